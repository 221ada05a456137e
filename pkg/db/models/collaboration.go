package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// Collaboration links two distinct vendors.
type Collaboration struct {
	ID                uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Vendor1ID         uuid.UUID                 `gorm:"column:vendor1_id;type:uuid;not null;index"`
	Vendor2ID         uuid.UUID                 `gorm:"column:vendor2_id;type:uuid;not null;index"`
	CollaborationType string                    `gorm:"column:collaboration_type;not null"`
	Status            enums.CollaborationStatus `gorm:"column:status;type:collaboration_status;not null;default:'proposed'"`
	CreatedAt         time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}
