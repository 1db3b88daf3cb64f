// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"os"
	"slices"

	"numclass-server/commons"
	"numclass-server/db"
	"numclass-server/handlers"
	"numclass-server/routes"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader(commons.LogHeader)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	db.InitDB()
	if slices.Contains(os.Args[1:], "--migrate-db") {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		db.MigrateDB()
	}

	if name, ok := commons.ArgValue("--create-api-key"); ok {
		createAPIKey(name)
		return
	}

	commons.InitNumberingPlans()
	routes.RegisterRoutes(e)

	port := commons.GetEnv("PORT", ":8080")
	if port[0] != ':' {
		port = ":" + port
	}
	e.Logger.Fatal(e.Start(port))
}

func createAPIKey(name string) {
	value, err := handlers.IssueAPIKey(name, nil, nil)
	if err != nil {
		commons.Logger.Fatalf("Failed to create API key: %v", err)
	}
	commons.Logger.Infof("API key %q created, it will not be shown again", name)
	fmt.Println(value)
}
