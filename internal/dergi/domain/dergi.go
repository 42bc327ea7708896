package domain

import (
	"context"
	"time"
)

// Dergi represents a magazine in the archive.
type Dergi struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Isim       string    `json:"isim" gorm:"not null"`
	AltBaslik  *string   `json:"alt_baslik" gorm:"column:alt_baslik"`
	Slogan     *string   `json:"slogan"`
	Aciklama   *string   `json:"aciklama"`
	Imtiyaz    *string   `json:"imtiyaz"`
	YaziMudur  *string   `json:"yazi_mudur" gorm:"column:yazi_mudur"`
	Cikis      *string   `json:"cikis"`
	Bitis      *string   `json:"bitis"`
	BasimYeri  *string   `json:"basim_yeri" gorm:"column:basim_yeri"`
	ToplamSayi *string   `json:"toplam_sayi" gorm:"column:toplam_sayi"`
	Eksikler   *string   `json:"eksikler"`
	Telif      *string   `json:"telif"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Dergi) TableName() string {
	return "dergis"
}

// ListFilter narrows magazine listings
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// DergiRepository defines the contract for magazine data access
type DergiRepository interface {
	Create(ctx context.Context, dergi *Dergi) error
	FindByID(ctx context.Context, id uint) (*Dergi, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Dergi, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, dergi *Dergi) error
	Delete(ctx context.Context, id uint) error
}
