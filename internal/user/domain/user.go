package domain

import (
	"context"
	"encoding/json"
	"time"

	listdomain "github.com/ttkcys/milliyetciler/internal/list/domain"
)

// IDColumn is a JSON-array-of-ids text column. It renders as the
// parsed id array in API responses even when the stored text is
// corrupt, in which case it degrades to [].
type IDColumn string

func (c IDColumn) MarshalJSON() ([]byte, error) {
	return json.Marshal(listdomain.ParseIDSequence(string(c)))
}

func (c *IDColumn) UnmarshalJSON(data []byte) error {
	ids := listdomain.ParseIDSequence(string(data))
	*c = IDColumn(listdomain.SerializeIDSequence(ids))
	return nil
}

// User represents an archive member.
//
// The three l_* columns hold JSON-encoded arrays of item ids, one per
// favorite-list kind. They are denormalized on purpose: the site reads
// a whole profile in one row fetch. Mutation goes through the list
// module, never through plain user updates.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password"`
	Level     int       `json:"level" gorm:"default:0"`
	IsCan     int       `json:"is_can" gorm:"column:is_can;default:0"`
	LDergi    IDColumn  `json:"lDergi" gorm:"column:l_dergi;not null;default:'[]'"`
	LSayi     IDColumn  `json:"lSayi" gorm:"column:l_sayi;not null;default:'[]'"`
	LYazar    IDColumn  `json:"lYazar" gorm:"column:l_yazar;not null;default:'[]'"`
	Tel       *string   `json:"tel"`
	Adres     *string   `json:"adres"`
	Meslek    *string   `json:"meslek"`
	Kurum     *string   `json:"kurum"`
	Kullanim  *string   `json:"kullanim"`
	Biyografi *string   `json:"biyografi"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// ListFilter narrows user listings
type ListFilter struct {
	Search string
	Level  *int
	IsCan  *int
	Limit  int
	Offset int
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter ListFilter) ([]User, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
}
