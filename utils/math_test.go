package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	{ // half to even
		assert.Equal(t, 2, Round(2.5))
		assert.Equal(t, 4, Round(3.5))
		assert.Equal(t, 4, Round(4.28))
		assert.Equal(t, -2, Round(-2.5))
		assert.Equal(t, 19, Round(19.0995875930637))
	}
}
