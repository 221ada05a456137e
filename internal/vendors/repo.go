package vendors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/pagination"
)

// Repository exposes vendor-profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a vendors repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new vendor profile and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateVendorDTO) (*models.VendorProfile, error) {
	vendor := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(vendor).Error; err != nil {
		return nil, err
	}
	return vendor, nil
}

// FindByID loads a vendor profile by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error) {
	var vendor models.VendorProfile
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FindByUserID loads the vendor profile owned by a user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.VendorProfile, error) {
	var vendor models.VendorProfile
	if err := r.db.WithContext(ctx).First(&vendor, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Update applies the non-nil fields of the DTO and returns the fresh row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, dto UpdateVendorDTO) (*models.VendorProfile, error) {
	updates := map[string]any{}
	if dto.BusinessName != nil {
		updates["business_name"] = *dto.BusinessName
	}
	if dto.BusinessType != nil {
		updates["business_type"] = *dto.BusinessType
	}
	if dto.Industry != nil {
		updates["industry"] = *dto.Industry
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.Website != nil {
		updates["website"] = *dto.Website
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.TargetAudience != nil {
		updates["target_audience"] = dbtypes.StringList(*dto.TargetAudience)
	}
	if dto.Budget != nil {
		updates["budget"] = *dto.Budget
	}
	if dto.Goals != nil {
		updates["goals"] = dbtypes.StringList(*dto.Goals)
	}
	if dto.Constraints != nil {
		updates["constraints"] = dbtypes.StringMap(*dto.Constraints)
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.VendorProfile{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// ListOthers returns every vendor profile except the given one, in the
// enumeration order the matching services rely on.
func (r *Repository) ListOthers(ctx context.Context, excludeID uuid.UUID) ([]models.VendorProfile, error) {
	var rows []models.VendorProfile
	if err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every vendor profile ordered by ascending id. Community
// grouping depends on this order being stable.
func (r *Repository) ListAll(ctx context.Context) ([]models.VendorProfile, error) {
	var rows []models.VendorProfile
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPage returns one cursor page of vendor profiles, newest first.
func (r *Repository) ListPage(ctx context.Context, params pagination.Params) ([]models.VendorProfile, string, error) {
	pageSize := pagination.NormalizeLimit(params.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(params.Limit)

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	qb := r.db.WithContext(ctx).Model(&models.VendorProfile{})
	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.VendorProfile
	if err := qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, nextCursor, nil
}
