package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/dergi/domain"
)

// GormDergiRepository implements DergiRepository using GORM
type GormDergiRepository struct {
	db *gorm.DB
}

// NewGormDergiRepository creates a new GORM magazine repository
func NewGormDergiRepository(db *gorm.DB) *GormDergiRepository {
	return &GormDergiRepository{db: db}
}

// Create inserts a new magazine into the database
func (r *GormDergiRepository) Create(ctx context.Context, dergi *domain.Dergi) error {
	if err := r.db.WithContext(ctx).Create(dergi).Error; err != nil {
		return fmt.Errorf("failed to create dergi: %w", err)
	}
	return nil
}

// FindByID retrieves a magazine by ID
func (r *GormDergiRepository) FindByID(ctx context.Context, id uint) (*domain.Dergi, error) {
	var dergi domain.Dergi
	if err := r.db.WithContext(ctx).First(&dergi, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("dergi")
		}
		return nil, fmt.Errorf("failed to find dergi: %w", err)
	}
	return &dergi, nil
}

func (r *GormDergiRepository) filtered(ctx context.Context, filter domain.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&domain.Dergi{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"isim LIKE ? OR alt_baslik LIKE ? OR slogan LIKE ? OR aciklama LIKE ?"+
				" OR imtiyaz LIKE ? OR yazi_mudur LIKE ? OR basim_yeri LIKE ?",
			like, like, like, like, like, like, like,
		)
	}
	return query
}

// FindAll retrieves magazines matching the filter
func (r *GormDergiRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.Dergi, error) {
	var dergis []domain.Dergi
	query := r.filtered(ctx, filter).Order("isim ASC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&dergis).Error; err != nil {
		return nil, fmt.Errorf("failed to find dergis: %w", err)
	}
	return dergis, nil
}

// Count returns the number of magazines matching the filter
func (r *GormDergiRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count dergis: %w", err)
	}
	return count, nil
}

// Update saves a magazine's information
func (r *GormDergiRepository) Update(ctx context.Context, dergi *domain.Dergi) error {
	if err := r.db.WithContext(ctx).Save(dergi).Error; err != nil {
		return fmt.Errorf("failed to update dergi: %w", err)
	}
	return nil
}

// Delete removes a magazine from the database
func (r *GormDergiRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Dergi{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete dergi: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("dergi")
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormDergiRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Dergi{})
}
