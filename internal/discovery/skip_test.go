package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteRange_Contains(t *testing.T) {
	r := byteRange{start: 10, end: 20}

	assert.True(t, r.contains(10, 20))
	assert.True(t, r.contains(12, 15))
	assert.False(t, r.contains(9, 20))
	assert.False(t, r.contains(10, 21))
}

func TestIsLoggingFacade(t *testing.T) {
	assert.True(t, isLoggingFacade("log"))
	assert.True(t, isLoggingFacade("logger"))
	assert.True(t, isLoggingFacade("logging"))
	assert.True(t, isLoggingFacade("self.logger.debug"))
	assert.False(t, isLoggingFacade("database"))
}

func TestSetOf(t *testing.T) {
	s := setOf("a", "b")
	assert.True(t, s["a"])
	assert.True(t, s["b"])
	assert.False(t, s["c"])
}
