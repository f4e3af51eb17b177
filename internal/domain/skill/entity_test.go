package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Forklift Operation", NormalizeName("  Forklift   Operation "))
	assert.Equal(t, "forklift operation", Key("Forklift  OPERATION"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestValidLevel(t *testing.T) {
	assert.False(t, ValidLevel(0))
	assert.True(t, ValidLevel(1))
	assert.True(t, ValidLevel(5))
	assert.False(t, ValidLevel(6))
}
