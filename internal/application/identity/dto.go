package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/identity"
)

// LoginRequest carries the credentials for either identity space
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the authenticated account as the client sees it
type UserInfo struct {
	ID          uuid.UUID     `json:"id"`
	Username    string        `json:"username"`
	Name        string        `json:"name"`
	Role        identity.Role `json:"role"`
	MeterNumber string        `json:"meter_number,omitempty"`
	Capacity    int           `json:"capacity,omitempty"`
	TariffRate  string        `json:"tariff_rate,omitempty"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserInfo  `json:"user"`
}
