package request

// CreateTeacherRequest represents a request to onboard a new teacher
type CreateTeacherRequest struct {
	InstitutionID  string   `json:"institution_id" binding:"omitempty,uuid"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"omitempty"`
	Password       string   `json:"password" binding:"required,min=8"`
	FirstName      string   `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string   `json:"last_name" binding:"required,min=1,max=100"`
	Qualifications []string `json:"qualifications" binding:"omitempty"`
	JoiningDate    string   `json:"joining_date" binding:"omitempty,datetime=2006-01-02"`
	Department     string   `json:"department" binding:"omitempty"`
}

// TimeWindow is one "HH:MM" interval inside an availability or blackout
// declaration.
type TimeWindow struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// UpdateTeacherAvailabilityRequest replaces a teacher's declared availability
// windows and blackout periods. Both maps are keyed by day name (MONDAY..
// SUNDAY); an empty availability map means the teacher is unconstrained,
// while a non-empty map restricts placements to the listed windows.
type UpdateTeacherAvailabilityRequest struct {
	Availability    map[string][]TimeWindow `json:"availability" binding:"omitempty"`
	BlackoutPeriods map[string][]TimeWindow `json:"blackout_periods" binding:"omitempty"`
}
