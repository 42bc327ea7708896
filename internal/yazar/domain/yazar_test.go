package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImagePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"relative unchanged", "yazarlar/ali.jpg", "yazarlar/ali.jpg"},
		{"leading slash stripped", "/yazarlar/ali.jpg", "yazarlar/ali.jpg"},
		{"scheme-relative url stripped", "//cdn.example.com/yazarlar/ali.jpg", "yazarlar/ali.jpg"},
		{"absolute url stripped", "https://cdn.example.com/yazarlar/ali.jpg", "yazarlar/ali.jpg"},
		{"http url stripped", "http://example.com/yazarlar/x.png", "yazarlar/x.png"},
		{"whitespace trimmed", "  yazarlar/a.jpg ", "yazarlar/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeImagePath(tt.raw))
		})
	}
}
