// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"assethub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create a profile for a signed-in identity.
type RegisterInput struct {
	Name        string      `json:"name" validate:"required,max=120"`
	PhotoURL    string      `json:"photoURL" validate:"omitempty,url"`
	Role        entity.Role `json:"role" validate:"required,oneof=employee hr"`
	CompanyName string      `json:"companyName" validate:"required_if=Role hr,max=120"`
	CompanyLogo string      `json:"companyLogo" validate:"omitempty,url"`
	PackageName string      `json:"packageName" validate:"required_if=Role hr"`
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

// --- Output DTOs ---

// TokenOutput is the backend session token issued for a verified identity.
type TokenOutput struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Viewer    *entity.Viewer `json:"viewer"`
}

// CompanyBrand is the company name and logo shown in navigation.
type CompanyBrand struct {
	CompanyName *string `json:"companyName"`
	CompanyLogo string  `json:"companyLogo"`
}

// AccountUsecase covers identity exchange, registration and role lookup.
type AccountUsecase interface {
	// IssueToken verifies an identity-provider ID token and issues a backend token.
	IssueToken(ctx context.Context, idToken string) (*TokenOutput, error)

	// Register creates the profile of a signed-in identity.
	Register(ctx context.Context, email string, input RegisterInput) (*entity.User, error)

	// GetRole answers the viewer's role and company; unknown emails are public visitors.
	GetRole(ctx context.Context, email string) (*entity.Viewer, error)

	// GetCompanyBrand returns the viewer's company name and logo.
	GetCompanyBrand(ctx context.Context, email string) (*CompanyBrand, error)

	// UpdateProfile changes name and photo.
	UpdateProfile(ctx context.Context, email string, input UpdateProfileInput) (*entity.User, error)
}
