package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/identity"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/auth"
)

// AuthService authenticates administrators and customers. The two account
// spaces share one login endpoint: the admin registry is consulted first,
// then the customer registry.
type AuthService struct {
	adminRepo    identity.AdminUserRepository
	customerRepo customer.CustomerRepository
	tariffRepo   catalog.TariffRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	adminRepo identity.AdminUserRepository,
	customerRepo customer.CustomerRepository,
	tariffRepo catalog.TariffRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		tariffRepo:   tariffRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		logger:       logger,
	}
}

var errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "invalid username or password")

// Login authenticates against the admin space first, then the customer
// space. The error never discloses which part of the credentials failed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return s.loginAdmin(req, admin)
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	cust, err := s.customerRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("login for unknown username", zap.String("username", req.Username))
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	return s.loginCustomer(ctx, req, cust)
}

func (s *AuthService) loginAdmin(req LoginRequest, admin *identity.AdminUser) (*LoginResponse, error) {
	if !admin.VerifyPassword(req.Password) {
		s.logger.Warn("invalid admin password", zap.String("username", req.Username))
		return nil, errInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:   admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Role:     identity.RoleAdmin,
	})
	if err != nil {
		s.logger.Error("failed to sign admin token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "failed to generate authentication token")
	}

	s.logger.Info("admin logged in",
		zap.String("username", admin.Username),
		zap.String("user_id", admin.ID.String()))

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User: UserInfo{
			ID:       admin.ID,
			Username: admin.Username,
			Name:     admin.Name,
			Role:     identity.RoleAdmin,
		},
	}, nil
}

func (s *AuthService) loginCustomer(ctx context.Context, req LoginRequest, cust *customer.Customer) (*LoginResponse, error) {
	if !cust.VerifyPassword(req.Password) {
		s.logger.Warn("invalid customer password", zap.String("username", req.Username))
		return nil, errInvalidCredentials
	}

	// customer tokens carry the meter installation so the portal can
	// render it without another round trip
	tier, err := s.tariffRepo.FindByID(ctx, cust.TariffID)
	if err != nil {
		s.logger.Error("customer tariff lookup failed",
			zap.String("customer_id", cust.ID.String()), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "failed to load customer tariff")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:      cust.ID,
		Username:    cust.Username,
		Name:        cust.Name,
		Role:        identity.RoleCustomer,
		MeterNumber: cust.MeterNumber,
		Capacity:    tier.Capacity,
		TariffRate:  tier.RatePerKWH.StringFixed(2),
	})
	if err != nil {
		s.logger.Error("failed to sign customer token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "failed to generate authentication token")
	}

	s.logger.Info("customer logged in",
		zap.String("username", cust.Username),
		zap.String("user_id", cust.ID.String()))

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User: UserInfo{
			ID:          cust.ID,
			Username:    cust.Username,
			Name:        cust.Name,
			Role:        identity.RoleCustomer,
			MeterNumber: cust.MeterNumber,
			Capacity:    tier.Capacity,
			TariffRate:  tier.RatePerKWH.StringFixed(2),
		},
	}, nil
}

// Logout revokes the presented token for the remainder of its lifetime
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		// an expired or malformed token needs no revocation
		s.logger.Warn("logout with invalid token", zap.Error(err))
		return nil
	}

	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("failed to revoke token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "failed to revoke token")
	}

	s.logger.Info("token revoked", zap.String("user_id", claims.UserID))
	return nil
}
