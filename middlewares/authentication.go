// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"numclass-server/commons"
	"numclass-server/crypto"
	"numclass-server/db"
	"numclass-server/models"

	"github.com/labstack/echo/v4"
)

const apiKeyContextKey = "api_key"

// VerifyAPIKeyMiddleware rejects requests without a valid Bearer API key.
// With optional set, requests pass through unless API_KEY_AUTH is "true".
func VerifyAPIKeyMiddleware(optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if optional && commons.GetEnv("API_KEY_AUTH", "false") != "true" {
				return next(c)
			}

			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			apiKeyValue, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || apiKeyValue == "" {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer API key is required",
				}
			}

			keyID, ok := crypto.SplitAPIKey(apiKeyValue)
			if !ok || db.Conn == nil {
				logger.Error("Authentication failed.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired API key",
				}
			}

			apiKey := models.APIKey{}
			if err := db.Conn.Where("key_id = ?", keyID).First(&apiKey).Error; err != nil {
				logger.Error("API key lookup failed: ", err)
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired API key",
				}
			}

			if apiKey.ExpiresAt != nil && apiKey.ExpiresAt.Before(time.Now()) {
				logger.Error("API key expired.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired API key",
				}
			}

			if err := crypto.NewCrypto().VerifySecret(apiKeyValue, apiKey.HashedKey); err != nil {
				logger.Error("API key verification failed: ", err)
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired API key",
				}
			}

			now := time.Now()
			apiKey.LastUsedAt = &now
			if err := db.Conn.Save(&apiKey).Error; err != nil {
				logger.Error("Failed to update API key LastUsedAt: ", err)
			}

			c.Set(apiKeyContextKey, apiKey)
			return next(c)
		}
	}
}

func GetAuthenticatedAPIKey(c echo.Context) (*models.APIKey, error) {
	if apiKey, ok := c.Get(apiKeyContextKey).(models.APIKey); ok {
		return &apiKey, nil
	}
	return nil, errors.New("no authenticated api key found")
}

// GetAuthenticatedAPIKeyID returns nil for unauthenticated requests.
func GetAuthenticatedAPIKeyID(c echo.Context) *uint {
	apiKey, err := GetAuthenticatedAPIKey(c)
	if err != nil {
		return nil
	}
	return &apiKey.ID
}
