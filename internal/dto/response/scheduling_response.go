package response

import (
	"time"

	"github.com/google/uuid"
)

// TimetableEntryResponse represents one placed session in API responses.
type TimetableEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	CourseID       uuid.UUID `json:"course_id"`
	StudentGroupID uuid.UUID `json:"student_group_id"`
	TeacherID      uuid.UUID `json:"teacher_id"`
	ClassroomID    uuid.UUID `json:"classroom_id"`
	DayOfWeek      string    `json:"day_of_week"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Duration       int       `json:"duration"`
	Semester       string    `json:"semester,omitempty"`
	AcademicYear   string    `json:"academic_year,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UnscheduledSessionResponse describes one session a generator could not
// place, with conflict detail only when debug mode is on.
type UnscheduledSessionResponse struct {
	CourseID  uuid.UUID `json:"course_id"`
	GroupID   uuid.UUID `json:"group_id"`
	Session   int       `json:"session"`
	Conflicts []string  `json:"conflicts,omitempty"`
}

// GenerateResponse is the shared shape for greedy, genetic, and
// graph-coloring generation results.
type GenerateResponse struct {
	Algorithm        string                       `json:"algorithm"`
	Schedule         []TimetableEntryResponse     `json:"schedule"`
	TotalSlots       int                          `json:"total_slots"`
	Unscheduled      []UnscheduledSessionResponse `json:"unscheduled,omitempty"`
	UnscheduledCount int                          `json:"unscheduled_count"`
	FitnessScore     float64                      `json:"fitness_score,omitempty"`
	Generations      int                          `json:"generations,omitempty"`
	PopulationSize   int                          `json:"population_size,omitempty"`
	TotalNodes       int                          `json:"total_nodes,omitempty"`
	TotalEdges       int                          `json:"total_edges,omitempty"`
	ColorsUsed       int                          `json:"colors_used,omitempty"`
}

// CompareOutcomeResponse is one algorithm's normalized result within a
// comparison run.
type CompareOutcomeResponse struct {
	Algorithm      string  `json:"algorithm"`
	TotalSlots     int     `json:"total_slots"`
	Unscheduled    int     `json:"unscheduled"`
	SuccessRate    float64 `json:"success_rate"`
	HardViolations int     `json:"hard_violations,omitempty"`
	SoftViolations int     `json:"soft_violations,omitempty"`
	FitnessScore   float64 `json:"fitness_score,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// CompareResponse wraps every algorithm's outcome from a comparison run.
type CompareResponse struct {
	Outcomes []CompareOutcomeResponse `json:"outcomes"`
}
