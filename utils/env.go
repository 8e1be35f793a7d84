package utils

import (
	"os"
	"strconv"
)

// GetEnv returns the value of an environment variable, or fallback when the
// variable is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt parses an integer environment variable, returning fallback when
// the variable is unset or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetEnvFloat parses a float environment variable, returning fallback when
// the variable is unset or not a valid number.
func GetEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
