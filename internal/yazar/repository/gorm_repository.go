package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazar/domain"
)

// completenessScore orders authors with richer profiles first.
const completenessScore = "(CASE WHEN image IS NOT NULL AND image <> '' THEN 1 ELSE 0 END" +
	" + CASE WHEN dogum IS NOT NULL AND dogum <> '' THEN 1 ELSE 0 END" +
	" + CASE WHEN olum IS NOT NULL AND olum <> '' THEN 1 ELSE 0 END)"

// GormYazarRepository implements YazarRepository using GORM
type GormYazarRepository struct {
	db *gorm.DB
}

// NewGormYazarRepository creates a new GORM author repository
func NewGormYazarRepository(db *gorm.DB) *GormYazarRepository {
	return &GormYazarRepository{db: db}
}

// Create inserts a new author into the database
func (r *GormYazarRepository) Create(ctx context.Context, yazar *domain.Yazar) error {
	if err := r.db.WithContext(ctx).Create(yazar).Error; err != nil {
		return fmt.Errorf("failed to create yazar: %w", err)
	}
	return nil
}

// FindByID retrieves an author by ID
func (r *GormYazarRepository) FindByID(ctx context.Context, id uint) (*domain.Yazar, error) {
	var yazar domain.Yazar
	if err := r.db.WithContext(ctx).First(&yazar, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("yazar")
		}
		return nil, fmt.Errorf("failed to find yazar: %w", err)
	}
	return &yazar, nil
}

func (r *GormYazarRepository) filtered(ctx context.Context, filter domain.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&domain.Yazar{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("isim LIKE ? OR biyografi LIKE ?", like, like)
	}
	return query
}

// FindAll retrieves authors matching the filter, most complete profiles first
func (r *GormYazarRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.Yazar, error) {
	var yazars []domain.Yazar
	query := r.filtered(ctx, filter).Order(completenessScore + " DESC").Order("id ASC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&yazars).Error; err != nil {
		return nil, fmt.Errorf("failed to find yazars: %w", err)
	}
	return yazars, nil
}

// Count returns the number of authors matching the filter
func (r *GormYazarRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count yazars: %w", err)
	}
	return count, nil
}

// Update saves an author's information
func (r *GormYazarRepository) Update(ctx context.Context, yazar *domain.Yazar) error {
	if err := r.db.WithContext(ctx).Save(yazar).Error; err != nil {
		return fmt.Errorf("failed to update yazar: %w", err)
	}
	return nil
}

// Delete removes an author from the database
func (r *GormYazarRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Yazar{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete yazar: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("yazar")
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormYazarRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Yazar{})
}
