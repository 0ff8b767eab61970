package uploadControllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// SanitizeFilename replaces every character that could break out of the
// uploads directory, path separators included.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// HandleImageUpload accepts a multipart image upload and returns its public
// URL. Restaurant photos, menu item photos and merchant payment QR codes all
// go through here; callers store the returned URL on their own records.
func HandleImageUpload(uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		cleanName := SanitizeFilename(file.Filename)
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to create upload folder: %v", err),
			})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to save file: %v", err),
			})
			return
		}

		fileURL := fmt.Sprintf("%s/uploads/%s", publicBaseURL, filename)
		log.Printf("📁 Image uploaded: %s -> %s", file.Filename, fileURL)

		c.JSON(http.StatusOK, gin.H{
			"file_url": fileURL,
			"message":  "File uploaded successfully",
		})
	}
}
