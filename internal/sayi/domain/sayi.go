package domain

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Sayi represents a single issue of a magazine.
type Sayi struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DergiID     uint      `json:"dergi_id" gorm:"column:dergi_id;not null;index"`
	SayiNum     string    `json:"sayi_num" gorm:"column:sayi_num;not null"`
	Ay          *string   `json:"ay"`
	Yil         *int      `json:"yil" gorm:"index"`
	Image       *string   `json:"image"`
	Pdf         *string   `json:"pdf"`
	ToplamSayfa *int      `json:"toplam_sayfa" gorm:"column:toplam_sayfa"`
	ToplamYazi  *int      `json:"toplam_yazi" gorm:"column:toplam_yazi"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Sayi) TableName() string {
	return "sayis"
}

// NormalizePath strips the scheme, host and leading slashes from a
// stored file reference so only the media-relative path remains.
func NormalizePath(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		s = u.Path
	}
	return strings.TrimLeft(s, "/")
}

// ListFilter narrows issue listings
type ListFilter struct {
	Search  string
	DergiID *uint
	Yil     *int
	Limit   int
	Offset  int
}

// SayiRepository defines the contract for issue data access
type SayiRepository interface {
	Create(ctx context.Context, sayi *Sayi) error
	FindByID(ctx context.Context, id uint) (*Sayi, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Sayi, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, sayi *Sayi) error
	Delete(ctx context.Context, id uint) error
}
