package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/users"
	"github.com/mateoquintero/venturelink-backend/internal/vendors"
	"github.com/mateoquintero/venturelink-backend/pkg/config"
	"github.com/mateoquintero/venturelink-backend/pkg/db"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/security"
)

// RegisterService handles the onboarding transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided
// dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Register creates the user and, for vendor accounts, the business profile
// in one transaction.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if !req.UserType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user type")
	}
	if req.UserType == enums.UserTypeVendor && req.Profile == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor accounts require a business profile")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var resp RegisterResponse
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)
		vendorRepo := vendors.NewRepository(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}
		if _, err := userRepo.FindByUsername(ctx, username); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check username")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			Username:     username,
			PasswordHash: passwordHash,
			UserType:     req.UserType,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		resp.User = users.FromModel(user)

		if req.UserType == enums.UserTypeVendor {
			profile, err := vendorRepo.Create(ctx, vendors.CreateVendorDTO{
				UserID:         user.ID,
				BusinessName:   req.Profile.BusinessName,
				BusinessType:   req.Profile.BusinessType,
				Industry:       req.Profile.Industry,
				Location:       req.Profile.Location,
				Website:        req.Profile.Website,
				Description:    req.Profile.Description,
				TargetAudience: req.Profile.TargetAudience,
				Budget:         req.Profile.Budget,
				Goals:          req.Profile.Goals,
			})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create vendor profile")
			}
			resp.Vendor = vendors.FromModel(profile)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
