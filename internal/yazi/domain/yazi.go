package domain

import (
	"context"
	"time"
)

// Yazi represents an article printed in an issue.
type Yazi struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SayiID    uint      `json:"sayi_id" gorm:"column:sayi_id;not null;index"`
	YazarID   uint      `json:"yazar_id" gorm:"column:yazar_id;not null;index"`
	Baslik    string    `json:"baslik" gorm:"not null"`
	SayfaNum  *int      `json:"sayfa_num" gorm:"column:sayfa_num"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Yazi) TableName() string {
	return "yazis"
}

// YaziWithMeta is one listing row: the article joined with its issue,
// magazine and author context.
type YaziWithMeta struct {
	Yazi
	DergiID   uint    `json:"dergi_id"`
	DergiIsim string  `json:"dergi_isim"`
	SayiNum   string  `json:"sayi_num"`
	Ay        *string `json:"ay"`
	Yil       *int    `json:"yil"`
	YazarIsim string  `json:"yazar_isim"`
}

// Sort orders for article listings.
const (
	SortRecent   = "recent"
	SortPageAsc  = "page-asc"
	SortPageDesc = "page-desc"
)

// ListFilter narrows article listings
type ListFilter struct {
	Search  string
	YazarID *uint
	SayiID  *uint
	DergiID *uint
	Sort    string
	Limit   int
	Offset  int
}

// YaziRepository defines the contract for article data access
type YaziRepository interface {
	Create(ctx context.Context, yazi *Yazi) error
	FindByID(ctx context.Context, id uint) (*Yazi, error)
	FindAllWithMeta(ctx context.Context, filter ListFilter) ([]YaziWithMeta, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, yazi *Yazi) error
	Delete(ctx context.Context, id uint) error
}
