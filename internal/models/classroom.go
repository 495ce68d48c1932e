package models

// Classroom represents a physical room available to host course sessions.
type Classroom struct {
	TenantBaseModel
	Name            string          `gorm:"size:100;not null" json:"name"`
	Capacity        int             `gorm:"not null" json:"capacity"`
	Availability    AvailabilityMap `gorm:"column:availability;type:jsonb" json:"availability,omitempty"`
	BlackoutPeriods BlackoutMap     `gorm:"column:blackout_periods;type:jsonb" json:"blackout_periods,omitempty"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Classroom
func (Classroom) TableName() string {
	return "classrooms"
}
