package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		details    string
	}{
		{"defaults", DefaultPageNumber, DefaultPageSize, ""},
		{"last addressable page", MaxPageOffset / 3, 3, ""},
		{"negative page", -1, 3, "pageNumber:must be greater than or equal to 0."},
		{"zero size", 0, 0, "pageSize:must be greater than 0."},
		{"offset overflows", math.MaxInt/3 + 1, 3, "pageNumber:is too large for the page size."},
		{"offset just past bound", MaxPageOffset/3 + 1, 3, "pageNumber:is too large for the page size."},
		{"huge size", 0, math.MaxInt, "pageSize:must be at most 2147483647."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePage(tt.pageNumber, tt.pageSize)
			if tt.details == "" {
				assert.NoError(t, err)
				return
			}
			appErr := assertValidationError(t, err)
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestPageMeta(t *testing.T) {
	totalPages, last := pageMeta(7, 0, 3)
	assert.Equal(t, 3, totalPages)
	assert.False(t, last)

	totalPages, last = pageMeta(7, 2, 3)
	assert.Equal(t, 3, totalPages)
	assert.True(t, last)

	totalPages, last = pageMeta(0, 0, 3)
	require.Zero(t, totalPages)
	assert.True(t, last)
}
