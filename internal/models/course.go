package models

import (
	"github.com/google/uuid"
)

// Course represents a teaching unit owed to one or more student groups a
// fixed number of times per week.
type Course struct {
	TenantBaseModel
	Name            string         `gorm:"size:150;not null" json:"name"`
	Duration        int            `gorm:"not null;default:60" json:"duration"` // minutes, 30..180
	Frequency       int            `gorm:"not null;default:1" json:"frequency"` // sessions/week per group
	TeacherID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Semester        string         `gorm:"size:20;not null" json:"semester"`
	AcademicYearID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"academic_year_id"`
	Department      string         `gorm:"size:100" json:"department,omitempty"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`

	// Relations
	Teacher       *Teacher       `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	AcademicYear  *AcademicYear  `gorm:"foreignKey:AcademicYearID" json:"academic_year,omitempty"`
	StudentGroups []StudentGroup `gorm:"many2many:course_student_groups;" json:"student_groups,omitempty"`
}

// TableName specifies the table name for Course
func (Course) TableName() string {
	return "courses"
}
