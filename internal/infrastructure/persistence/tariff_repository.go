package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/persistence/models"
)

// GormTariffRepository implements TariffRepository using GORM
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GormTariffRepository
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// FindByID finds a tariff tier by its ID
func (r *GormTariffRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.TariffTier, error) {
	var model models.TariffTierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCapacity finds a tariff tier by its power capacity
func (r *GormTariffRepository) FindByCapacity(ctx context.Context, capacity int) (*catalog.TariffTier, error) {
	var model models.TariffTierModel
	if err := r.db.WithContext(ctx).First(&model, "capacity = ?", capacity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all tariff tiers ordered by capacity ascending
func (r *GormTariffRepository) FindAll(ctx context.Context) ([]catalog.TariffTier, error) {
	var tierModels []models.TariffTierModel
	if err := r.db.WithContext(ctx).Order("capacity ASC").Find(&tierModels).Error; err != nil {
		return nil, err
	}

	tiers := make([]catalog.TariffTier, len(tierModels))
	for i, model := range tierModels {
		tiers[i] = *model.ToDomain()
	}
	return tiers, nil
}

// Save creates or updates a tariff tier
func (r *GormTariffRepository) Save(ctx context.Context, tier *catalog.TariffTier) error {
	model := models.TariffTierModelFromDomain(tier)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a tariff tier
func (r *GormTariffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TariffTierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByCapacity checks if a tier with the given capacity exists,
// excluding the given ID
func (r *GormTariffRepository) ExistsByCapacity(ctx context.Context, capacity int, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.TariffTierModel{}).Where("capacity = ?", capacity)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts all tariff tiers
func (r *GormTariffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TariffTierModel{}).Count(&count).Error
	return count, err
}

// Ensure GormTariffRepository implements the repository interface
var _ catalog.TariffRepository = (*GormTariffRepository)(nil)
