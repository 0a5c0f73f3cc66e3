// AngelaMos | 2026
// dto_test.go

package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{
			name: "defaults",
			in:   ListParams{},
			want: ListParams{Sort: SortNewest, Limit: 50},
		},
		{
			name: "all category disables filter",
			in:   ListParams{Category: "all", Limit: 10},
			want: ListParams{Sort: SortNewest, Limit: 10},
		},
		{
			name: "explicit category kept",
			in:   ListParams{Category: "Keyboard", Limit: 10},
			want: ListParams{Category: "Keyboard", Sort: SortNewest, Limit: 10},
		},
		{
			name: "unknown sort falls back to newest",
			in:   ListParams{Sort: "alphabetical", Limit: 10},
			want: ListParams{Sort: SortNewest, Limit: 10},
		},
		{
			name: "known sorts preserved",
			in:   ListParams{Sort: SortPriceDesc, Limit: 10},
			want: ListParams{Sort: SortPriceDesc, Limit: 10},
		},
		{
			name: "limit clamped to max",
			in:   ListParams{Limit: 5000},
			want: ListParams{Sort: SortNewest, Limit: 100},
		},
		{
			name: "negative limit gets default",
			in:   ListParams{Limit: -3},
			want: ListParams{Sort: SortNewest, Limit: 50},
		},
		{
			name: "search passes through",
			in:   ListParams{Search: "keyboard", Limit: 10},
			want: ListParams{Search: "keyboard", Sort: SortNewest, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(50, 100))
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryKeyboard))
	assert.True(t, IsValidCategory(CategoryMousepad))
	assert.False(t, IsValidCategory("keyboard"))
	assert.False(t, IsValidCategory("Laptop"))
	assert.False(t, IsValidCategory(""))
}
