package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAPIKey(t *testing.T) {
	key1 := GenerateAPIKey()
	key2 := GenerateAPIKey()

	assert.Len(t, key1, 36)
	assert.NotEqual(t, key1, key2)
}
