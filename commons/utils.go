// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var envLoaded = false

// LoadEnvFile loads the file named by a --env-file argument once. Variables
// already present in the environment win.
func LoadEnvFile() {
	if envLoaded {
		return
	}
	envLoaded = true

	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			envFile := args[i+1]
			fmt.Printf("Loading environment variables from file: %s\n", envFile)
			if err := godotenv.Load(envFile); err != nil {
				fmt.Printf("Failed to load env file: %s\n", err)
			}
			return
		}
	}
}

func GetEnv(key string, fallback ...string) string {
	LoadEnvFile()
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// GetEnvInt falls back when the variable is unset, malformed or not positive.
func GetEnvInt(key string, fallback int) int {
	v := GetEnv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 1 {
		Logger.Warnf("Ignoring invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return i
}

// ArgValue returns the value following flag in os.Args.
func ArgValue(flag string) (string, bool) {
	args := os.Args[1:]
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}
