// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"strings"

	"github.com/labstack/gommon/log"
)

const LogHeader = "${time_rfc3339} ${level} ${short_file}:${line} -"

var Logger = newLogger()

func newLogger() *log.Logger {
	logger := log.New("numclass")
	logger.SetLevel(ParseLogLevel(GetEnv("LOG_LEVEL")))
	logger.SetHeader(LogHeader)
	return logger
}

func ParseLogLevel(level string) log.Lvl {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DEBUG
	case "INFO":
		return log.INFO
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	default:
		return log.INFO
	}
}

// InitLogger re-reads LOG_LEVEL, which may have been set by an env file
// loaded after package initialization.
func InitLogger() {
	Logger.SetLevel(ParseLogLevel(GetEnv("LOG_LEVEL")))
}
