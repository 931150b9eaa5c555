package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// AuthMiddleware creates a Gin middleware handler that validates HMAC-signed
// bearer tokens. The token's "sub" (numeric, as a number or a string) is the
// user id and its "email" claim becomes the author label.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		identity, err := identityFromClaims(claims)
		if err != nil {
			logger.Warn("Invalid token claims", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, identity)
		ctx = WithLogger(ctx, logger.With(slog.Int64("user_id", identity.UserID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func identityFromClaims(claims jwt.MapClaims) (domain.Author, error) {
	var userID int64
	switch sub := claims["sub"].(type) {
	case float64:
		if sub != float64(int64(sub)) {
			return domain.Author{}, fmt.Errorf("subject %v is not an integer", sub)
		}
		userID = int64(sub)
	case string:
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return domain.Author{}, fmt.Errorf("subject %q is not numeric", sub)
		}
		userID = id
	default:
		return domain.Author{}, errors.New("subject missing")
	}
	if userID <= 0 {
		return domain.Author{}, fmt.Errorf("subject %d is not a valid user id", userID)
	}

	email, _ := claims["email"].(string)
	return domain.Author{UserID: userID, Label: strings.TrimSpace(email)}, nil
}
