package request

import "time"

// CreateAcademicYearRequest represents a request to create an academic year
type CreateAcademicYearRequest struct {
	Name        string    `json:"name" binding:"required,min=1,max=50"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	IsCurrent   bool      `json:"is_current"`
	Description string    `json:"description" binding:"omitempty"`
}

// UpdateAcademicYearRequest represents a request to update an academic year
type UpdateAcademicYearRequest struct {
	Name        string     `json:"name" binding:"omitempty,min=1,max=50"`
	StartDate   *time.Time `json:"start_date" binding:"omitempty"`
	EndDate     *time.Time `json:"end_date" binding:"omitempty"`
	IsCurrent   *bool      `json:"is_current" binding:"omitempty"`
	Description string     `json:"description" binding:"omitempty"`
}
