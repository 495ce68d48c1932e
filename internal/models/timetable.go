package models

import (
	"github.com/google/uuid"
)

// Timetable entry statuses.
const (
	TimetableStatusScheduled = "scheduled"
	TimetableStatusCancelled = "cancelled"
)

// TimetableEntry is the unit of scheduling output: one course session placed
// at a specific day/time/classroom for one student group and teacher.
type TimetableEntry struct {
	BaseModel
	InstitutionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"institution_id"`
	AcademicYearID uuid.UUID `gorm:"type:uuid;not null;index" json:"academic_year_id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	StudentGroupID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_group_id"`
	TeacherID      uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	ClassroomID    uuid.UUID `gorm:"type:uuid;not null;index" json:"classroom_id"`
	DayOfWeek      DayOfWeek `gorm:"size:20;not null;index" json:"day_of_week"`
	StartTime      string    `gorm:"size:10;not null" json:"start_time"` // "09:00"
	EndTime        string    `gorm:"size:10;not null" json:"end_time"`   // "10:00"
	Duration       int       `gorm:"not null" json:"duration"`           // minutes
	WeekNumber     int       `gorm:"default:0" json:"week_number,omitempty"`
	Semester       string    `gorm:"size:20" json:"semester"`
	AcademicYear   string    `gorm:"size:20" json:"academic_year"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	Status         string    `gorm:"size:20;default:'scheduled'" json:"status"`

	// Relations
	Institution  *Institution  `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	Course       *Course       `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	StudentGroup *StudentGroup `gorm:"foreignKey:StudentGroupID" json:"student_group,omitempty"`
	Teacher      *Teacher      `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Classroom    *Classroom    `gorm:"foreignKey:ClassroomID" json:"classroom,omitempty"`
}

// TableName specifies the table name for TimetableEntry
func (TimetableEntry) TableName() string {
	return "timetable_entries"
}
