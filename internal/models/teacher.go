package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Teacher represents a member of faculty. The scheduling core only reads
// Availability/BlackoutPeriods; the rest of the fields are ambient HR data.
type Teacher struct {
	TenantBaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Qualifications  pq.StringArray `gorm:"type:text[]" json:"qualifications,omitempty"`
	JoiningDate     *time.Time     `json:"joining_date,omitempty"`
	Department      string         `gorm:"size:100" json:"department,omitempty"`
	Availability    AvailabilityMap `gorm:"column:availability;type:jsonb" json:"availability,omitempty"`
	BlackoutPeriods BlackoutMap     `gorm:"column:blackout_periods;type:jsonb" json:"blackout_periods,omitempty"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Teacher
func (Teacher) TableName() string {
	return "teachers"
}
