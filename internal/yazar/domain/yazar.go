package domain

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Yazar represents an author in the archive.
type Yazar struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Isim      string    `json:"isim" gorm:"not null"`
	Biyografi *string   `json:"biyografi"`
	Dogum     *string   `json:"dogum"`
	Olum      *string   `json:"olum"`
	Parent    *string   `json:"parent"`
	Childs    *string   `json:"childs"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Yazar) TableName() string {
	return "yazars"
}

// NormalizeImagePath turns an absolute image URL into the relative
// form stored in the database: scheme and host stripped, no leading
// slashes. Relative paths pass through unchanged.
func NormalizeImagePath(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		s = u.Path
	}
	return strings.TrimLeft(s, "/")
}

// ListFilter narrows author listings
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// YazarRepository defines the contract for author data access
type YazarRepository interface {
	Create(ctx context.Context, yazar *Yazar) error
	FindByID(ctx context.Context, id uint) (*Yazar, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Yazar, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, yazar *Yazar) error
	Delete(ctx context.Context, id uint) error
}
