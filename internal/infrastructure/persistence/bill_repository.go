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

// GormBillRepository implements BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// FindByID finds a bill by its ID
func (r *GormBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsageID finds the bill derived from a usage record
func (r *GormBillRepository) FindByUsageID(ctx context.Context, usageID uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "usage_id = ?", usageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllDetailed finds bills with customer, tariff, and usage joins
func (r *GormBillRepository) FindAllDetailed(ctx context.Context, status billing.BillStatus) ([]billing.BillDetail, error) {
	query := r.detailQuery(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var billModels []models.BillModel
	if err := query.Find(&billModels).Error; err != nil {
		return nil, err
	}
	return toDetails(billModels), nil
}

// FindByCustomerDetailed finds one customer's bills with join data
func (r *GormBillRepository) FindByCustomerDetailed(ctx context.Context, customerID uuid.UUID, status billing.BillStatus) ([]billing.BillDetail, error) {
	query := r.detailQuery(ctx).Where("customer_id = ?", customerID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var billModels []models.BillModel
	if err := query.Find(&billModels).Error; err != nil {
		return nil, err
	}
	return toDetails(billModels), nil
}

func (r *GormBillRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Customer.Tariff").
		Preload("Usage").
		Preload("Payments").
		Order("year DESC, month DESC")
}

func toDetails(billModels []models.BillModel) []billing.BillDetail {
	details := make([]billing.BillDetail, len(billModels))
	for i := range billModels {
		details[i] = billModels[i].ToDetail()
	}
	return details
}

// Save creates or updates a bill
func (r *GormBillRepository) Save(ctx context.Context, b *billing.Bill) error {
	return r.db.WithContext(ctx).Save(models.BillModelFromDomain(b)).Error
}

// Pay atomically flips the bill to paid and inserts the payment row.
// The status flip is a conditional update so two concurrent payments of
// the same bill cannot both record a payment.
func (r *GormBillRepository) Pay(ctx context.Context, billID uuid.UUID, p *billing.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.BillModel{}).
			Where("id = ? AND status = ?", billID, string(billing.BillStatusUnpaid)).
			Update("status", string(billing.BillStatusPaid))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.BillModel{}).Where("id = ?", billID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return shared.ErrNotFound
			}
			return billing.ErrBillAlreadyPaid
		}
		return tx.Create(models.PaymentModelFromDomain(p)).Error
	})
}

// DeleteCascade removes the bill and its payments in one transaction
func (r *GormBillRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PaymentModel{}, "bill_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.BillModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountByStatus returns aggregate counts over all bills
func (r *GormBillRepository) CountByStatus(ctx context.Context) (billing.StatusCounts, error) {
	var counts billing.StatusCounts
	if err := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Where("status = ?", string(billing.BillStatusUnpaid)).
		Count(&counts.Unpaid).Error; err != nil {
		return billing.StatusCounts{}, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Where("status = ?", string(billing.BillStatusPaid)).
		Count(&counts.Paid).Error; err != nil {
		return billing.StatusCounts{}, err
	}
	counts.Total = counts.Unpaid + counts.Paid
	return counts, nil
}

// Ensure GormBillRepository implements the repository interface
var _ billing.BillRepository = (*GormBillRepository)(nil)
