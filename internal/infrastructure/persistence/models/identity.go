package models

import (
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/identity"
)

// AdminUserModel is the persistence model for administrator accounts
type AdminUserModel struct {
	AggregateModel
	Username     string `gorm:"not null;uniqueIndex;size:64"`
	PasswordHash string `gorm:"not null;size:100"`
	Name         string `gorm:"not null;size:100"`
}

// TableName specifies the table name
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// ToDomain converts the model to a domain admin user
func (m *AdminUserModel) ToDomain() *identity.AdminUser {
	return &identity.AdminUser{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		PasswordHash:      m.PasswordHash,
		Name:              m.Name,
	}
}

// AdminUserModelFromDomain creates a model from a domain admin user
func AdminUserModelFromDomain(u *identity.AdminUser) *AdminUserModel {
	m := &AdminUserModel{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
