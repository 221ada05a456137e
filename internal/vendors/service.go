package vendors

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/pagination"
)

// Service defines the behavior needed by the vendors controller.
type Service interface {
	Create(ctx context.Context, dto CreateVendorDTO) (*VendorDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*VendorDTO, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*VendorDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateVendorDTO) (*VendorDTO, error)
	List(ctx context.Context, params pagination.Params) (*ListResult, error)
	AnalyzeNeeds(ctx context.Context, id uuid.UUID) ([]NeedDTO, error)
}

type vendorRepository interface {
	Create(ctx context.Context, dto CreateVendorDTO) (*models.VendorProfile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.VendorProfile, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateVendorDTO) (*models.VendorProfile, error)
	ListPage(ctx context.Context, params pagination.Params) ([]models.VendorProfile, string, error)
}

type service struct {
	vendors vendorRepository
}

// NewService constructs a vendors service with the provided repository.
func NewService(repo vendorRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	return &service{vendors: repo}, nil
}

func (s *service) Create(ctx context.Context, dto CreateVendorDTO) (*VendorDTO, error) {
	vendor, err := s.vendors.Create(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create vendor profile")
	}
	return FromModel(vendor), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*VendorDTO, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}
	return FromModel(vendor), nil
}

func (s *service) GetByUser(ctx context.Context, userID uuid.UUID) (*VendorDTO, error) {
	vendor, err := s.vendors.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}
	return FromModel(vendor), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateVendorDTO) (*VendorDTO, error) {
	if _, err := s.vendors.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	vendor, err := s.vendors.Update(ctx, id, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update vendor profile")
	}
	return FromModel(vendor), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	rows, nextCursor, err := s.vendors.ListPage(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vendor profiles")
	}

	out := make([]VendorDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return &ListResult{Vendors: out, NextCursor: nextCursor}, nil
}
