package auth

import (
	"context"
	"log"
	"net/http"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
	adminPolicy  AdminPolicy = DenyAllPolicy{}
)

// Init sets up the Firebase verifier and the admin policy. Called once from
// main; handlers fail closed if it never ran.
func Init(ctx context.Context, policy AdminPolicy) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	projectID = os.Getenv("FIREBASE_PROJECT_ID")

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		return err
	}
	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		return err
	}

	if policy != nil {
		adminPolicy = policy
	}
	return nil
}

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// verifyIDToken checks the Firebase token and its audience, mirroring what
// the identity provider guarantees client-side.
func verifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if token.Audience != projectID {
		return nil, errInvalidAudience
	}
	return token, nil
}

// LoginHandler exchanges a Firebase ID token for an app session token,
// creating the user (and their cart) on first login. The role claim is
// decided server-side: the admin policy first, then the stored role.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if firebaseAuth == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Identity provider not configured"})
			return
		}

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		uid := token.UID

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", uid).First(&user).Error

		switch {
		case err == gorm.ErrRecordNotFound:
			user = models.User{
				ID:       uid,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Role:     models.RoleCustomer,
				Cart:     models.Cart{UserID: uid},
			}
			if createErr := db.Create(&user).Error; createErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		role := user.Role
		if adminPolicy.IsAdmin(email) {
			role = models.RoleAdmin
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"role":    role,
			"token":   IssueToken(uid, email, role),
		})
	}
}

type merchantRegisterRequest struct {
	IDToken      string `json:"idToken" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Cuisine      string `json:"cuisine"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DeliveryTime string `json:"delivery_time"`
	Distance     string `json:"distance"`
}

// MerchantRegisterHandler creates the merchant user plus their restaurant in
// Pending status. The restaurant stays invisible to customers until an admin
// approves it.
func MerchantRegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if firebaseAuth == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Identity provider not configured"})
			return
		}

		var req merchantRegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		uid := token.UID

		var existing models.Restaurant
		if err := db.Where("owner_uid = ?", uid).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Merchant already registered"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var user models.User
			lookupErr := tx.Where("id = ?", uid).First(&user).Error
			if lookupErr == gorm.ErrRecordNotFound {
				user = models.User{
					ID:       uid,
					Email:    email,
					Name:     name,
					Provider: "google",
					Role:     models.RoleMerchant,
				}
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
			} else if lookupErr != nil {
				return lookupErr
			} else if err := tx.Model(&user).Update("role", models.RoleMerchant).Error; err != nil {
				return err
			}

			restaurant := models.Restaurant{
				OwnerUID:     uid,
				Name:         req.Name,
				Cuisine:      req.Cuisine,
				Description:  req.Description,
				ImageURL:     req.ImageURL,
				DeliveryTime: req.DeliveryTime,
				Distance:     req.Distance,
				Status:       models.RestaurantStatusPending,
			}
			return tx.Create(&restaurant).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register merchant"})
			return
		}

		log.Printf("✅ Merchant registered, awaiting approval: %s (%s)", req.Name, email)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration submitted, awaiting admin approval",
			"token":   IssueToken(uid, email, models.RoleMerchant),
		})
	}
}
