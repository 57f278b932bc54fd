package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, float64(50), CalculateGrowth(150, 100))
	assert.Equal(t, float64(-50), CalculateGrowth(50, 100))
	assert.Equal(t, float64(0), CalculateGrowth(0, 0))
	assert.Equal(t, float64(100), CalculateGrowth(10, 0))
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 2025, ParseYear("2025"))
	assert.Equal(t, 0, ParseYear("abc"))
	assert.Equal(t, 0, ParseYear(""))
}
