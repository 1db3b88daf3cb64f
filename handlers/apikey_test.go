package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"numclass-server/db"
	"numclass-server/middlewares"
	"numclass-server/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuedAPIKeyAuthenticates(t *testing.T) {
	withPlans(t)
	withDB(t)
	t.Setenv("API_KEY_AUTH", "true")

	value, err := IssueAPIKey("ops", nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(value, "ak_"))

	_, err = IssueAPIKey("ops", nil, nil)
	assert.Error(t, err, "duplicate names are rejected")

	e := echo.New()
	h := middlewares.VerifyAPIKeyMiddleware(true)(ClassifyHandler)

	req := httptest.NewRequest(http.MethodPost, "/v1/numbers/classify", strings.NewReader(`{"phone_number":"+16502530000"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+value)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var logged models.ClassificationLog
	require.NoError(t, db.Conn.First(&logged).Error)
	require.NotNil(t, logged.APIKeyID)

	req = httptest.NewRequest(http.MethodPost, "/v1/numbers/classify", strings.NewReader(`{"phone_number":"+16502530000"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+value[:len(value)-1]+"x")
	requireHTTPError(t, h(e.NewContext(req, httptest.NewRecorder())), http.StatusUnauthorized)
}

func TestExpiredAPIKeyIsRejected(t *testing.T) {
	withDB(t)

	past := time.Now().Add(-time.Hour)
	value, err := IssueAPIKey("expired", nil, &past)
	require.NoError(t, err)

	e := echo.New()
	h := middlewares.VerifyAPIKeyMiddleware(false)(GetClassificationLogsSummaryHandler)
	req := httptest.NewRequest(http.MethodGet, "/v1/event-logs/summary", nil)
	req.Header.Set("Authorization", "Bearer "+value)
	requireHTTPError(t, h(e.NewContext(req, httptest.NewRecorder())), http.StatusUnauthorized)
}
