package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/yazi/domain"
)

// GormYaziRepository implements YaziRepository using GORM
type GormYaziRepository struct {
	db *gorm.DB
}

// NewGormYaziRepository creates a new GORM article repository
func NewGormYaziRepository(db *gorm.DB) *GormYaziRepository {
	return &GormYaziRepository{db: db}
}

// Create inserts a new article into the database
func (r *GormYaziRepository) Create(ctx context.Context, yazi *domain.Yazi) error {
	if err := r.db.WithContext(ctx).Create(yazi).Error; err != nil {
		return fmt.Errorf("failed to create yazi: %w", err)
	}
	return nil
}

// FindByID retrieves an article by ID
func (r *GormYaziRepository) FindByID(ctx context.Context, id uint) (*domain.Yazi, error) {
	var yazi domain.Yazi
	if err := r.db.WithContext(ctx).First(&yazi, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("yazi")
		}
		return nil, fmt.Errorf("failed to find yazi: %w", err)
	}
	return &yazi, nil
}

func (r *GormYaziRepository) joined(ctx context.Context, filter domain.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("yazis").
		Joins("JOIN sayis ON sayis.id = yazis.sayi_id").
		Joins("JOIN dergis ON dergis.id = sayis.dergi_id").
		Joins("JOIN yazars ON yazars.id = yazis.yazar_id")

	if filter.Search != "" {
		query = query.Where("yazis.baslik LIKE ?", "%"+filter.Search+"%")
	}
	if filter.YazarID != nil {
		query = query.Where("yazis.yazar_id = ?", *filter.YazarID)
	}
	if filter.SayiID != nil {
		query = query.Where("yazis.sayi_id = ?", *filter.SayiID)
	}
	if filter.DergiID != nil {
		query = query.Where("sayis.dergi_id = ?", *filter.DergiID)
	}
	return query
}

// FindAllWithMeta retrieves articles with their issue, magazine and
// author context
func (r *GormYaziRepository) FindAllWithMeta(ctx context.Context, filter domain.ListFilter) ([]domain.YaziWithMeta, error) {
	query := r.joined(ctx, filter).
		Select("yazis.*, sayis.dergi_id AS dergi_id, dergis.isim AS dergi_isim," +
			" sayis.sayi_num AS sayi_num, sayis.ay AS ay, sayis.yil AS yil," +
			" yazars.isim AS yazar_isim")

	switch filter.Sort {
	case domain.SortPageAsc:
		query = query.Order("yazis.sayfa_num ASC NULLS LAST").Order("yazis.id ASC")
	case domain.SortPageDesc:
		query = query.Order("yazis.sayfa_num DESC NULLS LAST").Order("yazis.id ASC")
	default:
		query = query.Order("yazis.id DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var yazis []domain.YaziWithMeta
	if err := query.Scan(&yazis).Error; err != nil {
		return nil, fmt.Errorf("failed to find yazis: %w", err)
	}
	return yazis, nil
}

// Count returns the number of articles matching the filter
func (r *GormYaziRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	var count int64
	if err := r.joined(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count yazis: %w", err)
	}
	return count, nil
}

// Update saves an article's information
func (r *GormYaziRepository) Update(ctx context.Context, yazi *domain.Yazi) error {
	if err := r.db.WithContext(ctx).Save(yazi).Error; err != nil {
		return fmt.Errorf("failed to update yazi: %w", err)
	}
	return nil
}

// Delete removes an article from the database
func (r *GormYaziRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Yazi{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete yazi: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("yazi")
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormYaziRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Yazi{})
}
