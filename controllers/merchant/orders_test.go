package merchantControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, ownerUID string) *models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		OwnerUID: ownerUID,
		Name:     "Ward Kitchen " + ownerUID,
		Status:   models.RestaurantStatusApproved,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return &restaurant
}

func seedOrder(t *testing.T, db *gorm.DB, restaurantID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	order := models.Order{
		CustomerID:       "user-1",
		RestaurantID:     restaurantID,
		Status:           status,
		PaymentMethod:    models.PaymentMethodCash,
		DeliveryLocation: "Ward 3, Bed 12",
		TotalAmount:      30,
		OrderDate:        time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

// merchantRequest builds an authenticated gin test context, as middleware
// would after validating the merchant's token.
func merchantRequest(uid, method, target, body string, orderID uint) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	if orderID != 0 {
		c.Params = gin.Params{{Key: "order_id", Value: strconv.FormatUint(uint64(orderID), 10)}}
	}
	c.Set("user_id", uid)
	return c, w
}

func orderStatus(t *testing.T, db *gorm.DB, orderID uint) models.OrderStatus {
	t.Helper()
	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", orderID).Error)
	return order.Status
}

func TestAdvanceOrderStepsForward(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")

	steps := map[models.OrderStatus]models.OrderStatus{
		models.OrderStatusPendingPayment: models.OrderStatusPlaced,
		models.OrderStatusPlaced:         models.OrderStatusPreparing,
		models.OrderStatusPreparing:      models.OrderStatusOutForDelivery,
		models.OrderStatusOutForDelivery: models.OrderStatusDelivered,
	}

	for from, want := range steps {
		order := seedOrder(t, db, restaurant.ID, from)

		c, w := merchantRequest("merchant-1", http.MethodPost, "/merchant/orders/advance", "", order.ID)
		AdvanceOrder(db)(c)

		assert.Equal(t, http.StatusOK, w.Code, "advance from %s", from)
		assert.Equal(t, want, orderStatus(t, db, order.ID), "advance from %s", from)
	}
}

func TestAdvanceOrderTerminalRejected(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")

	for _, terminal := range []models.OrderStatus{
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		order := seedOrder(t, db, restaurant.ID, terminal)

		c, w := merchantRequest("merchant-1", http.MethodPost, "/merchant/orders/advance", "", order.ID)
		AdvanceOrder(db)(c)

		assert.Equal(t, http.StatusConflict, w.Code, "advance from %s", terminal)
		assert.Equal(t, terminal, orderStatus(t, db, order.ID))
	}
}

func TestAdvanceOrderOtherRestaurant(t *testing.T) {
	db := setupTestDB(t)
	owner := seedRestaurant(t, db, "merchant-1")
	seedRestaurant(t, db, "merchant-2")
	order := seedOrder(t, db, owner.ID, models.OrderStatusPlaced)

	c, w := merchantRequest("merchant-2", http.MethodPost, "/merchant/orders/advance", "", order.ID)
	AdvanceOrder(db)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.OrderStatusPlaced, orderStatus(t, db, order.ID))
}

func TestCancelOrderRequiresConfirmation(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	order := seedOrder(t, db, restaurant.ID, models.OrderStatusPreparing)

	// A bare cancel request is rejected and the order stays put.
	c, w := merchantRequest("merchant-1", http.MethodPost, "/merchant/orders/cancel", `{}`, order.ID)
	CancelOrder(db)(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.OrderStatusPreparing, orderStatus(t, db, order.ID))

	// The explicit confirmation flag goes through.
	c, w = merchantRequest("merchant-1", http.MethodPost, "/merchant/orders/cancel", `{"confirm":true}`, order.ID)
	CancelOrder(db)(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderStatusCancelled, orderStatus(t, db, order.ID))
}

func TestCancelOrderOtherRestaurant(t *testing.T) {
	db := setupTestDB(t)
	owner := seedRestaurant(t, db, "merchant-1")
	seedRestaurant(t, db, "merchant-2")
	order := seedOrder(t, db, owner.ID, models.OrderStatusPlaced)

	c, w := merchantRequest("merchant-2", http.MethodPost, "/merchant/orders/cancel", `{"confirm":true}`, order.ID)
	CancelOrder(db)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.OrderStatusPlaced, orderStatus(t, db, order.ID))
}

func TestCancelOrderTerminalRejected(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	order := seedOrder(t, db, restaurant.ID, models.OrderStatusDelivered)

	c, w := merchantRequest("merchant-1", http.MethodPost, "/merchant/orders/cancel", `{"confirm":true}`, order.ID)
	CancelOrder(db)(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, models.OrderStatusDelivered, orderStatus(t, db, order.ID))
}

func TestGetOrdersStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	seedOrder(t, db, restaurant.ID, models.OrderStatusPreparing)
	seedOrder(t, db, restaurant.ID, models.OrderStatusPreparing)
	seedOrder(t, db, restaurant.ID, models.OrderStatusDelivered)

	c, w := merchantRequest("merchant-1", http.MethodGet, "/merchant/orders?status=Preparing", "", 0)
	GetOrders(db)(c)

	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, models.OrderStatusPreparing, order.Status)
	}

	// Unknown statuses are rejected, not silently ignored.
	c, w = merchantRequest("merchant-1", http.MethodGet, "/merchant/orders?status=shipped", "", 0)
	GetOrders(db)(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
