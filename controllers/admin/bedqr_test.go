package adminController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.BedQRCode{}))
	return db
}

func adminRequest(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestCreateBedQRCode(t *testing.T) {
	db := setupTestDB(t)
	uploadDir := t.TempDir()

	c, w := adminRequest(http.MethodPost, "/admin/bed-qrcodes",
		`{"bed_id":"A-301-4","details":"Cardiology, Room 301, Bed 4"}`)
	CreateBedQRCode(db, uploadDir, "http://localhost:8080")(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var code models.BedQRCode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &code))
	assert.True(t, strings.HasPrefix(code.QRValue, "bed:"))
	assert.True(t, code.IsActive)
	assert.Equal(t, "http://localhost:8080/uploads/bedqr/bed_A-301-4.png", code.ImageURL)

	// The printable PNG landed in the uploads dir.
	info, err := os.Stat(filepath.Join(uploadDir, "bedqr", "bed_A-301-4.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The payload resolves back to the bed record.
	found, err := models.FindActiveBedByQRValue(db, code.QRValue)
	require.NoError(t, err)
	assert.Equal(t, "A-301-4", found.BedID)
}

func TestCreateBedQRCodeSanitizesFilename(t *testing.T) {
	db := setupTestDB(t)
	uploadDir := t.TempDir()

	// A bed id carrying path separators must not let the PNG escape the
	// uploads dir.
	c, w := adminRequest(http.MethodPost, "/admin/bed-qrcodes",
		`{"bed_id":"../../evil","details":"somewhere"}`)
	CreateBedQRCode(db, uploadDir, "http://localhost:8080")(c)

	require.Equal(t, http.StatusCreated, w.Code)

	_, err := os.Stat(filepath.Join(uploadDir, "bedqr", "bed_.._.._evil.png"))
	assert.NoError(t, err)

	parent := filepath.Dir(uploadDir)
	_, err = os.Stat(filepath.Join(parent, "evil.png"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(parent, "bed_...png"))
	assert.True(t, os.IsNotExist(err))
}
