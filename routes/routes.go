// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"numclass-server/commons"
	"numclass-server/handlers"
	"numclass-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	e.GET("/healthz", handlers.HealthHandler)

	api_v1 := e.Group("/v1")
	api_v1.POST("/numbers/classify", handlers.ClassifyHandler, middlewares.VerifyAPIKeyMiddleware(true))
	api_v1.POST("/numbers/bulk-classify", handlers.BulkClassifyHandler, middlewares.VerifyAPIKeyMiddleware(true))
	api_v1.GET("/countries", handlers.GetCountriesHandler)
	api_v1.GET("/countries/:country_id", handlers.GetCountryHandler)
	api_v1.GET("/event-logs", handlers.GetClassificationLogsHandler, middlewares.VerifyAPIKeyMiddleware(false))
	api_v1.GET("/event-logs/summary", handlers.GetClassificationLogsSummaryHandler, middlewares.VerifyAPIKeyMiddleware(false))
	commons.Logger.Info("v1 routes registered successfully")
}
