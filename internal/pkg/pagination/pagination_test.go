package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curation-microservice/internal/pkg/pagination"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		page       int
		limit      int
		wantPages  int
	}{
		{"exact division", 20, 1, 5, 4},
		{"remainder rounds up", 23, 1, 5, 5},
		{"single partial page", 3, 1, 10, 1},
		{"empty result set", 0, 1, 10, 0},
		{"limit of one", 7, 3, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := pagination.Compute(tt.totalCount, tt.page, tt.limit)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.page, info.CurrentPage)
		})
	}
}

func TestComputeOutOfRangePageKeepsMetadata(t *testing.T) {
	info := pagination.Compute(23, 6, 5)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 6, info.CurrentPage)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, 10))
	assert.Equal(t, 10, pagination.Offset(2, 10))
	assert.Equal(t, 25, pagination.Offset(6, 5))
	assert.Equal(t, 0, pagination.Offset(0, 10))
}
