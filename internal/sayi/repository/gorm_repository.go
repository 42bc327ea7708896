package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/sayi/domain"
)

// sayiNumOrder sorts by the numeric part of sayi_num so "10" lands
// after "9" instead of after "1".
const sayiNumOrder = "NULLIF(regexp_replace(sayi_num, '[^0-9]', '', 'g'), '')::int ASC"

// GormSayiRepository implements SayiRepository using GORM
type GormSayiRepository struct {
	db *gorm.DB
}

// NewGormSayiRepository creates a new GORM issue repository
func NewGormSayiRepository(db *gorm.DB) *GormSayiRepository {
	return &GormSayiRepository{db: db}
}

// Create inserts a new issue into the database
func (r *GormSayiRepository) Create(ctx context.Context, sayi *domain.Sayi) error {
	if err := r.db.WithContext(ctx).Create(sayi).Error; err != nil {
		return fmt.Errorf("failed to create sayi: %w", err)
	}
	return nil
}

// FindByID retrieves an issue by ID
func (r *GormSayiRepository) FindByID(ctx context.Context, id uint) (*domain.Sayi, error) {
	var sayi domain.Sayi
	if err := r.db.WithContext(ctx).First(&sayi, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("sayi")
		}
		return nil, fmt.Errorf("failed to find sayi: %w", err)
	}
	return &sayi, nil
}

func (r *GormSayiRepository) filtered(ctx context.Context, filter domain.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&domain.Sayi{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("sayi_num LIKE ? OR ay LIKE ?", like, like)
	}
	if filter.DergiID != nil {
		query = query.Where("dergi_id = ?", *filter.DergiID)
	}
	if filter.Yil != nil {
		query = query.Where("yil = ?", *filter.Yil)
	}
	return query
}

// FindAll retrieves issues matching the filter in publication order
func (r *GormSayiRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.Sayi, error) {
	var sayis []domain.Sayi
	query := r.filtered(ctx, filter).
		Order("yil ASC").
		Order(sayiNumOrder).
		Order("id ASC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&sayis).Error; err != nil {
		return nil, fmt.Errorf("failed to find sayis: %w", err)
	}
	return sayis, nil
}

// Count returns the number of issues matching the filter
func (r *GormSayiRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sayis: %w", err)
	}
	return count, nil
}

// Update saves an issue's information
func (r *GormSayiRepository) Update(ctx context.Context, sayi *domain.Sayi) error {
	if err := r.db.WithContext(ctx).Save(sayi).Error; err != nil {
		return fmt.Errorf("failed to update sayi: %w", err)
	}
	return nil
}

// Delete removes an issue from the database
func (r *GormSayiRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Sayi{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sayi: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("sayi")
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormSayiRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sayi{})
}
