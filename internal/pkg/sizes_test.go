package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeRange(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SizeRange(256, 65536, 8), []int{256, 2048, 16384, 65536})
	assert.Equal(SizeRange(256, 1048576, 8), []int{256, 2048, 16384, 131072, 1048576})
	assert.Equal(SizeRange(64, 1024, 2), []int{64, 128, 256, 512, 1024})

	// hi is kept even off the progression
	assert.Equal(SizeRange(10, 500, 10), []int{10, 100, 500})

	// degenerate single-point sweep
	assert.Equal(SizeRange(32, 32, 8), []int{32})
}
