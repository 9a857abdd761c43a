package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// searchMinFragment is the shortest name fragment worth querying
const searchMinFragment = 2

// searchResultLimit caps admin lookup results
const searchResultLimit = 10

// CustomerService handles customer registry operations
type CustomerService struct {
	customerRepo customer.CustomerRepository
	tariffRepo   catalog.TariffRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo customer.CustomerRepository, tariffRepo catalog.TariffRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		tariffRepo:   tariffRepo,
	}
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByUsername(ctx, req.Username, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "username is already taken")
	}

	if _, err := s.tariffRepo.FindByID(ctx, req.TariffID); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(req.Username, req.Password, req.MeterNumber, req.Name, req.Address, req.TariffID)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// List returns customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// Search finds customers by a case-insensitive name fragment. Fragments
// shorter than two characters return an empty set rather than scanning.
func (s *CustomerService) Search(ctx context.Context, fragment string) ([]CustomerResponse, error) {
	if len(fragment) < searchMinFragment {
		return []CustomerResponse{}, nil
	}

	customers, err := s.customerRepo.SearchByName(ctx, fragment, searchResultLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, nil
}

// Update modifies a customer's profile. The password hash is untouched.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByUsername(ctx, req.Username, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "username is already taken")
	}

	if _, err := s.tariffRepo.FindByID(ctx, req.TariffID); err != nil {
		return nil, err
	}

	if err := c.UpdateProfile(req.Username, req.MeterNumber, req.Name, req.Address, req.TariffID); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// ChangePassword replaces a customer's credential after verifying the
// current one
func (s *CustomerService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := c.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return s.customerRepo.Save(ctx, c)
}

// Delete removes a customer together with all dependent payments,
// bills, and usage records
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customerRepo.DeleteCascade(ctx, id)
}
