package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidWeekDate(t *testing.T) {
	assert.True(t, ValidWeekDate("2024-01-15"))
	assert.False(t, ValidWeekDate("2024-1-15"))
	assert.False(t, ValidWeekDate("15/01/2024"))
	assert.False(t, ValidWeekDate("not-a-date"))
	assert.False(t, ValidWeekDate(""))
}
