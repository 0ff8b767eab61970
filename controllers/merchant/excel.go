package merchantControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

// GET /merchant/menu/export-excel
func ExportMenuToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		var items []models.MenuItem
		if err := db.Where("restaurant_id = ?", restaurant.ID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Menu")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "ImageURL", "IsAvailable", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, item := range items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Description)
			row.AddCell().SetValue(item.Price)
			row.AddCell().SetValue(item.ImageURL)
			row.AddCell().SetValue(item.IsAvailable)
			row.AddCell().SetValue(item.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=menu.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// POST /merchant/menu/import-excel
// Rows with an ID update the existing item; rows without create a new one.
// Malformed rows are skipped, not fatal.
func ImportMenuFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, ok := restaurantFor(db, c)
		if !ok {
			return
		}

		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			imageURL := get(4)
			available := !strings.EqualFold(get(5), "false")

			if name == "" || priceErr != nil || price <= 0 {
				skippedCount++
				continue
			}

			if idStr != "" {
				id, idErr := strconv.ParseUint(idStr, 10, 64)
				if idErr != nil {
					skippedCount++
					continue
				}
				result := db.Model(&models.MenuItem{}).
					Where("id = ? AND restaurant_id = ?", uint(id), restaurant.ID).
					Updates(map[string]interface{}{
						"name":         name,
						"description":  description,
						"price":        price,
						"image_url":    imageURL,
						"is_available": available,
					})
				if result.Error != nil || result.RowsAffected == 0 {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			item := models.MenuItem{
				RestaurantID: restaurant.ID,
				Name:         name,
				Description:  description,
				Price:        price,
				ImageURL:     imageURL,
				IsAvailable:  available,
			}
			if err := db.Create(&item).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
