package testutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAlphaNum(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]*$`)
	for _, length := range []int{-1, 0, 3, 10} {
		s := RandomAlphaNum(length)
		assert.Len(t, s, max(length, 0))
		assert.Regexp(t, pattern, s)
	}
}
