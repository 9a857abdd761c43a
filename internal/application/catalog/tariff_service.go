package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// TariffService handles tariff catalog operations
type TariffService struct {
	tariffRepo   catalog.TariffRepository
	customerRepo customer.CustomerRepository
}

// NewTariffService creates a new TariffService
func NewTariffService(tariffRepo catalog.TariffRepository, customerRepo customer.CustomerRepository) *TariffService {
	return &TariffService{
		tariffRepo:   tariffRepo,
		customerRepo: customerRepo,
	}
}

// List returns all tariff tiers ordered by capacity
func (s *TariffService) List(ctx context.Context) ([]TariffResponse, error) {
	tiers, err := s.tariffRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TariffResponse, len(tiers))
	for i := range tiers {
		responses[i] = ToTariffResponse(&tiers[i])
	}
	return responses, nil
}

// GetByID retrieves a tariff tier by ID
func (s *TariffService) GetByID(ctx context.Context, id uuid.UUID) (*TariffResponse, error) {
	tier, err := s.tariffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToTariffResponse(tier)
	return &response, nil
}

// Create creates a new tariff tier
func (s *TariffService) Create(ctx context.Context, req CreateTariffRequest) (*TariffResponse, error) {
	exists, err := s.tariffRepo.ExistsByCapacity(ctx, req.Capacity, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "tariff with this capacity already exists")
	}

	tier, err := catalog.NewTariffTier(req.Capacity, req.RatePerKWH)
	if err != nil {
		return nil, err
	}

	if err := s.tariffRepo.Save(ctx, tier); err != nil {
		return nil, err
	}

	response := ToTariffResponse(tier)
	return &response, nil
}

// Update updates an existing tariff tier
func (s *TariffService) Update(ctx context.Context, id uuid.UUID, req UpdateTariffRequest) (*TariffResponse, error) {
	tier, err := s.tariffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.tariffRepo.ExistsByCapacity(ctx, req.Capacity, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "tariff with this capacity already exists")
	}

	if err := tier.Update(req.Capacity, req.RatePerKWH); err != nil {
		return nil, err
	}

	if err := s.tariffRepo.Save(ctx, tier); err != nil {
		return nil, err
	}

	response := ToTariffResponse(tier)
	return &response, nil
}

// Delete removes a tariff tier. A tier still assigned to customers
// cannot be removed.
func (s *TariffService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tariffRepo.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.customerRepo.CountByTariff(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return shared.NewDomainError("TARIFF_IN_USE", "tariff is still assigned to customers")
	}

	return s.tariffRepo.Delete(ctx, id)
}
