package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/persistence/models"
)

// GormUsageRepository implements UsageRepository using GORM
type GormUsageRepository struct {
	db *gorm.DB
}

// NewGormUsageRepository creates a new GormUsageRepository
func NewGormUsageRepository(db *gorm.DB) *GormUsageRepository {
	return &GormUsageRepository{db: db}
}

// FindByID finds a usage record by its ID
func (r *GormUsageRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.UsageRecord, error) {
	var model models.UsageRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds usage records joined with customer data
func (r *GormUsageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.UsageDetail, error) {
	var usageModels []models.UsageRecordModel
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Order("year DESC, month DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&usageModels).Error; err != nil {
		return nil, err
	}

	details := make([]billing.UsageDetail, len(usageModels))
	for i, model := range usageModels {
		detail := billing.UsageDetail{UsageRecord: *model.ToDomain()}
		if model.Customer != nil {
			detail.CustomerName = model.Customer.Name
			detail.MeterNumber = model.Customer.MeterNumber
		}
		details[i] = detail
	}
	return details, nil
}

// FindByCustomer finds a customer's usage records, newest period first
func (r *GormUsageRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.UsageRecord, error) {
	var usageModels []models.UsageRecordModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("year DESC, month DESC").
		Find(&usageModels).Error; err != nil {
		return nil, err
	}

	records := make([]billing.UsageRecord, len(usageModels))
	for i, model := range usageModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// FindByPeriod finds a customer's usage record for one billing period
func (r *GormUsageRepository) FindByPeriod(ctx context.Context, customerID uuid.UUID, month, year int) (*billing.UsageRecord, error) {
	var model models.UsageRecordModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND month = ? AND year = ?", customerID, month, year).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByPeriod checks for a usage record with the given (customer, month, year)
func (r *GormUsageRepository) ExistsByPeriod(ctx context.Context, customerID uuid.UUID, month, year int, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.UsageRecordModel{}).
		Where("customer_id = ? AND month = ? AND year = ?", customerID, month, year)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithBill inserts the usage record and its derived bill atomically.
// The composite unique index on (customer_id, month, year) backs up the
// application-level period check under concurrency.
func (r *GormUsageRepository) CreateWithBill(ctx context.Context, u *billing.UsageRecord, b *billing.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.UsageRecordModelFromDomain(u)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return billing.ErrPeriodAlreadyRecorded
			}
			return err
		}
		return tx.Create(models.BillModelFromDomain(b)).Error
	})
}

// UpdateWithBill saves the usage record and rewrites the linked bill's
// consumption in the same transaction
func (r *GormUsageRepository) UpdateWithBill(ctx context.Context, u *billing.UsageRecord, b *billing.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(models.UsageRecordModelFromDomain(u)).Error; err != nil {
			return err
		}
		return tx.Save(models.BillModelFromDomain(b)).Error
	})
}

// DeleteCascade removes the usage record, its bill, and that bill's payments
func (r *GormUsageRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var usageModel models.UsageRecordModel
		if err := tx.First(&usageModel, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		var billModel models.BillModel
		err := tx.First(&billModel, "usage_id = ?", id).Error
		switch {
		case err == nil:
			if err := tx.Delete(&models.PaymentModel{}, "bill_id = ?", billModel.ID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.BillModel{}, "id = ?", billModel.ID).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Delete(&models.UsageRecordModel{}, "id = ?", id).Error
	})
}

// CountInPeriod counts usage records recorded for a billing period
func (r *GormUsageRepository) CountInPeriod(ctx context.Context, month, year int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UsageRecordModel{}).
		Where("month = ? AND year = ?", month, year).
		Count(&count).Error
	return count, err
}

// Ensure GormUsageRepository implements the repository interface
var _ billing.UsageRepository = (*GormUsageRepository)(nil)
