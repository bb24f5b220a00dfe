package vehicles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner(42, 42))
	assert.False(t, IsOwner(42, 99))
	assert.False(t, IsOwner(0, 42))
}
