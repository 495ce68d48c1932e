package models

// Institution represents a school/institution in the system. Every
// scheduling entity is scoped to one institution so two schools never share
// a teacher, classroom, or timetable entry.
type Institution struct {
	BaseModel
	Name     string `gorm:"size:255;not null" json:"name"`
	Code     string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Address  string `gorm:"type:text" json:"address,omitempty"`
	Phone    string `gorm:"size:20" json:"phone,omitempty"`
	Email    string `gorm:"size:255" json:"email,omitempty"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Institution
func (Institution) TableName() string {
	return "institutions"
}
