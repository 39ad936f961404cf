package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedQueryOptionsSanitize(t *testing.T) {
	for _, tt := range []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults kept", 1, 20, 1, 20},
		{"zero page clamps to one", 0, 20, 1, 20},
		{"negative page clamps to one", -3, 20, 1, 20},
		{"zero page size falls back to default", 2, 0, 2, 20},
		{"oversized page size clamps to max", 1, 500, 1, 100},
		{"max page size allowed", 1, 100, 1, 100},
		{"minimum page size allowed", 1, 1, 1, 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			opts := FeedQueryOptions{Page: tt.page, PageSize: tt.pageSize}
			opts.Sanitize()
			require.Equal(t, tt.wantPage, opts.Page)
			require.Equal(t, tt.wantPageSize, opts.PageSize)
		})
	}
}
