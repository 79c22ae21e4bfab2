package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemUsage(t *testing.T) {
	buf := make([]float64, 1<<18)
	buf[len(buf)-1] = 1
	mu := GetMemUsage()
	assert.True(t, mu.Sys >= mu.Alloc)
	assert.True(t, mu.TotalAlloc >= mu.Alloc)
	assert.True(t, strings.HasPrefix(mu.String(), "Alloc = "))
	assert.Equal(t, 1., buf[len(buf)-1])
}
