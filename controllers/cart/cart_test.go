package cartControllers

import (
	"testing"
	"time"

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
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Promotion{},
		&models.PaymentMethod{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, ownerUID string) *models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		OwnerUID: ownerUID,
		Name:     "Ward Kitchen",
		Status:   models.RestaurantStatusApproved,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return &restaurant
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price float64) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func TestAddItemCreatesLineThenIncrements(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	congee := seedMenuItem(t, db, restaurant.ID, "Congee", 12)

	line, err := AddItem(db, "user-1", congee.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "Congee", line.Name)
	assert.Equal(t, 12.0, line.Price)
	assert.Equal(t, restaurant.ID, line.RestaurantID)

	// Same item again bumps the quantity instead of creating a second line.
	line, err = AddItem(db, "user-1", congee.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	cart, err := loadOrCreateCart(db, "user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddItem(db, "user-1", 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddItemRejectsSecondRestaurant(t *testing.T) {
	db := setupTestDB(t)
	first := seedRestaurant(t, db, "merchant-1")
	second := seedRestaurant(t, db, "merchant-2")
	soup := seedMenuItem(t, db, first.ID, "Soup", 18)
	rice := seedMenuItem(t, db, second.ID, "Fried Rice", 22)

	_, err := AddItem(db, "user-1", soup.ID)
	require.NoError(t, err)

	_, err = AddItem(db, "user-1", rice.ID)
	assert.ErrorIs(t, err, models.ErrRestaurantMismatch)

	// The rejected add must leave the cart untouched.
	cart, err := loadOrCreateCart(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, soup.ID, cart.Items[0].MenuItemID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemSnapshotSurvivesMenuEdit(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	noodles := seedMenuItem(t, db, restaurant.ID, "Noodles", 15)

	_, err := AddItem(db, "user-1", noodles.ID)
	require.NoError(t, err)

	// Merchant raises the price after the item is carted.
	require.NoError(t, db.Model(&models.MenuItem{}).
		Where("id = ?", noodles.ID).Update("price", 99).Error)

	cart, err := loadOrCreateCart(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 15.0, cart.Items[0].Price)
	assert.Equal(t, 15.0, cart.Subtotal())
}

func TestUpdateQuantity(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	congee := seedMenuItem(t, db, restaurant.ID, "Congee", 12)

	_, err := AddItem(db, "user-1", congee.ID)
	require.NoError(t, err)

	require.NoError(t, UpdateQuantity(db, "user-1", congee.ID, 5))
	cart, err := loadOrCreateCart(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Zero removes the line.
	require.NoError(t, UpdateQuantity(db, "user-1", congee.ID, 0))
	cart, err = loadOrCreateCart(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateQuantityNegativeRejected(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	congee := seedMenuItem(t, db, restaurant.ID, "Congee", 12)

	_, err := AddItem(db, "user-1", congee.ID)
	require.NoError(t, err)

	err = UpdateQuantity(db, "user-1", congee.ID, -1)
	require.Error(t, err)
	assert.Equal(t, "quantity must not be negative", err.Error())

	cart, err := loadOrCreateCart(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	congee := seedMenuItem(t, db, restaurant.ID, "Congee", 12)

	_, err := AddItem(db, "user-1", congee.ID)
	require.NoError(t, err)

	err = UpdateQuantity(db, "user-1", congee.ID+1, 3)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReorderMergesIntoCart(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	congee := seedMenuItem(t, db, restaurant.ID, "Congee", 12)
	soup := seedMenuItem(t, db, restaurant.ID, "Soup", 18)

	order := models.Order{
		CustomerID:   "user-1",
		RestaurantID: restaurant.ID,
		Items: []models.OrderItem{
			{MenuItemID: congee.ID, Name: "Congee", Price: 12, RestaurantID: restaurant.ID, Quantity: 2},
			{MenuItemID: soup.ID, Name: "Soup", Price: 18, RestaurantID: restaurant.ID, Quantity: 1},
		},
		Status:        models.OrderStatusDelivered,
		PaymentMethod: models.PaymentMethodCash,
		OrderDate:     time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)

	// One unit of congee already in the cart; reorder should merge, not duplicate.
	_, err := AddItem(db, "user-1", congee.ID)
	require.NoError(t, err)

	cart, err := Reorder(db, "user-1", order.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	quantities := map[uint]int{}
	for _, line := range cart.Items {
		quantities[line.MenuItemID] = line.Quantity
	}
	assert.Equal(t, 3, quantities[congee.ID])
	assert.Equal(t, 1, quantities[soup.ID])
}

func TestReorderRejectsOtherCustomersOrder(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedRestaurant(t, db, "merchant-1")
	congee := seedMenuItem(t, db, restaurant.ID, "Congee", 12)

	order := models.Order{
		CustomerID:   "user-1",
		RestaurantID: restaurant.ID,
		Items: []models.OrderItem{
			{MenuItemID: congee.ID, Name: "Congee", Price: 12, RestaurantID: restaurant.ID, Quantity: 1},
		},
		Status:        models.OrderStatusDelivered,
		PaymentMethod: models.PaymentMethodCash,
		OrderDate:     time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)

	_, err := Reorder(db, "user-2", order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReorderRestaurantMismatch(t *testing.T) {
	db := setupTestDB(t)
	first := seedRestaurant(t, db, "merchant-1")
	second := seedRestaurant(t, db, "merchant-2")
	congee := seedMenuItem(t, db, first.ID, "Congee", 12)
	rice := seedMenuItem(t, db, second.ID, "Fried Rice", 22)

	order := models.Order{
		CustomerID:   "user-1",
		RestaurantID: first.ID,
		Items: []models.OrderItem{
			{MenuItemID: congee.ID, Name: "Congee", Price: 12, RestaurantID: first.ID, Quantity: 1},
		},
		Status:        models.OrderStatusDelivered,
		PaymentMethod: models.PaymentMethodCash,
		OrderDate:     time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)

	_, err := AddItem(db, "user-1", rice.ID)
	require.NoError(t, err)

	_, err = Reorder(db, "user-1", order.ID)
	assert.ErrorIs(t, err, models.ErrRestaurantMismatch)

	cart, err := loadOrCreateCart(db, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, rice.ID, cart.Items[0].MenuItemID)
}
