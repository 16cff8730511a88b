package pkg

import "os"

// Getenv returns the value of the environment variable key, or defaultValue
// when it is not set. A variable set to the empty string is returned as is.
func Getenv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
