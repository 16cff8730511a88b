package testutil

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum returns a random lowercase alphanumeric string, safe to use
// in docker container names. length <= 0 gives an empty string.
func RandomAlphaNum(length int) string {
	if length <= 0 {
		return ""
	}
	return gofakeit.Regex(fmt.Sprintf("[a-z0-9]{%d}", length))
}
