package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

var errInvalidAudience = errors.New("invalid token audience")

// IssueToken mints the app session JWT carried in the Authorization header.
func IssueToken(userID, email string, role models.UserRole) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signed
}
