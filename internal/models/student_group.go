package models

// StudentGroup represents a cohort of students that attend courses together.
type StudentGroup struct {
	TenantBaseModel
	Name            string          `gorm:"size:100;not null" json:"name"`
	Size            int             `gorm:"not null" json:"size"`
	Semester        string          `gorm:"size:20" json:"semester,omitempty"`
	Department      string          `gorm:"size:100" json:"department,omitempty"`
	Availability    AvailabilityMap `gorm:"column:availability;type:jsonb" json:"availability,omitempty"`
	BlackoutPeriods BlackoutMap     `gorm:"column:blackout_periods;type:jsonb" json:"blackout_periods,omitempty"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for StudentGroup
func (StudentGroup) TableName() string {
	return "student_groups"
}
