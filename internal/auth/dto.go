package auth

import (
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/internal/users"
	"github.com/mateoquintero/venturelink-backend/internal/vendors"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token and user produced by a successful login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}

// RegisterVendorProfile is the optional business profile created alongside a
// vendor account.
type RegisterVendorProfile struct {
	BusinessName   string          `json:"business_name" validate:"required"`
	BusinessType   string          `json:"business_type"`
	Industry       string          `json:"industry" validate:"required"`
	Location       string          `json:"location"`
	Website        string          `json:"website"`
	Description    string          `json:"description"`
	TargetAudience []string        `json:"target_audience"`
	Budget         decimal.Decimal `json:"budget"`
	Goals          []string        `json:"goals"`
}

// RegisterRequest contains the payload required to onboard a new account.
type RegisterRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Username string         `json:"username" validate:"required"`
	Password string         `json:"password" validate:"required,min=8"`
	UserType enums.UserType `json:"user_type" validate:"required"`

	// Profile is required when registering a vendor account.
	Profile *RegisterVendorProfile `json:"profile,omitempty"`
}

// RegisterResponse returns the created identities.
type RegisterResponse struct {
	User   *users.UserDTO     `json:"user"`
	Vendor *vendors.VendorDTO `json:"vendor,omitempty"`
}

// ValidateResponse echoes the claims of a still-active token.
type ValidateResponse struct {
	UserID   string         `json:"user_id"`
	Username string         `json:"username"`
	UserType enums.UserType `json:"user_type"`
}
