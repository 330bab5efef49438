package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 5, want: 0},
		{total: 1, size: 5, want: 1},
		{total: 5, size: 5, want: 1},
		{total: 6, size: 5, want: 2},
		{total: 12, size: 5, want: 3},
		{total: -3, size: 5, want: 0},
		{total: 10, size: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestPage_Article(t *testing.T) {
	p := Page{Number: 1, Size: 5, TotalResults: 7, Articles: []Article{
		{Title: "first"},
		{Title: "second"},
	}}

	a, ok := p.Article(2)
	assert.True(t, ok)
	assert.Equal(t, "second", a.Title)

	for _, idx := range []int{-1, 0, 3, 6} {
		_, ok = p.Article(idx)
		assert.False(t, ok, "index %d", idx)
	}

	assert.Equal(t, 2, p.TotalPages())
	assert.False(t, p.Empty())
	assert.True(t, Page{}.Empty())
}
