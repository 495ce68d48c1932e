// Package conflict implements the scheduling core's conflict-detection
// kernel: given a candidate placement, the persisted entries, and the
// in-flight pending entries, it returns a structured list of reasons the
// placement is inadmissible. An empty list means the placement is clear.
package conflict

import (
	"context"
	"fmt"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/availability"
	"campus-core/internal/scheduling/counts"
	"campus-core/internal/scheduling/timeutil"

	"github.com/google/uuid"
)

// Kind enumerates the structured conflict categories. Each Conflict carries
// its human-readable Message, rendered when the kernel builds it; every
// consumer that needs to
// branch on conflict type — the genetic optimizer's fitness function above
// all — switches on Kind instead of substring-matching rendered text.
type Kind int

const (
	DuplicateCourse Kind = iota
	DuplicateGroup
	DuplicateClassroom
	DuplicateTeacher
	CapExceeded
	NotAvailable
)

// Conflict pairs a structured Kind with its rendered message.
type Conflict struct {
	Kind    Kind
	Message string
}

// Conflicts is a list of Conflict with a convenience Strings() renderer.
type Conflicts []Conflict

// Strings renders each conflict as a human-readable message.
func (c Conflicts) Strings() []string {
	out := make([]string, len(c))
	for i, conflict := range c {
		out[i] = conflict.Message
	}
	return out
}

// HasHard reports whether any conflict is a hard violation (uniqueness or
// capacity), as opposed to a soft availability violation.
func (c Conflicts) HasHard() bool {
	for _, conflict := range c {
		if conflict.Kind != NotAvailable {
			return true
		}
	}
	return false
}

// Entity carries resolved name + availability data for rendering and for
// the availability filter. A nil Entity skips that entity's availability
// check and renders with a generic label; the overlap and cap checks still
// use the candidate's identifiers, and resolved names only affect message
// rendering, never the conflict decision itself.
type Entity struct {
	ID              uuid.UUID
	Name            string
	Availability    models.DayIntervals
	BlackoutPeriods models.DayIntervals
}

func (e *Entity) availabilityEntity() *availability.Entity {
	if e == nil {
		return nil
	}
	return &availability.Entity{Availability: e.Availability, BlackoutPeriods: e.BlackoutPeriods}
}

func (e *Entity) label(fallback string) string {
	if e != nil && e.Name != "" {
		return e.Name
	}
	return fallback
}

// Entities bundles the optional resolved teacher/classroom/group references
// used for availability checks and message rendering.
type Entities struct {
	Teacher   *Entity
	Classroom *Entity
	Group     *Entity
}

// Entry is a persisted or pending timetable placement, as seen by the
// kernel. CourseID is included purely for the duplicate-course check (two
// sessions of the same course must not overlap).
type Entry struct {
	ID          uuid.UUID
	CourseID    uuid.UUID
	GroupID     uuid.UUID
	TeacherID   uuid.UUID
	ClassroomID uuid.UUID
	Day         models.DayOfWeek
	StartTime   string
	EndTime     string
}

// Repository resolves persisted entries for the kernel's day/identifier
// lookup. In production this is backed by a database query; in pure
// in-memory fitness evaluation (the genetic optimizer) it is a no-op
// returning an empty set.
type Repository interface {
	FindTimetable(ctx context.Context, day models.DayOfWeek, courseID, groupID, teacherID, classroomID uuid.UUID, excludeEntryID *uuid.UUID) ([]Entry, error)
}

// NoopRepository always returns an empty persisted set.
type NoopRepository struct{}

// FindTimetable implements Repository by returning no persisted entries.
func (NoopRepository) FindTimetable(context.Context, models.DayOfWeek, uuid.UUID, uuid.UUID, uuid.UUID, uuid.UUID, *uuid.UUID) ([]Entry, error) {
	return nil, nil
}

// Candidate is the placement under evaluation.
type Candidate struct {
	CourseID       uuid.UUID
	GroupID        uuid.UUID
	TeacherID      uuid.UUID
	ClassroomID    uuid.UUID
	Day            models.DayOfWeek
	StartTime      string
	EndTime        string
	ExcludeEntryID *uuid.UUID
}

// Check runs the full conflict kernel contract: persisted + pending
// lookups, count constraints over all+candidate, overlap checks over all,
// and availability checks over the candidate's entities. repo may be nil,
// equivalent to NoopRepository.
func Check(ctx context.Context, repo Repository, candidate Candidate, pending []Entry, entities Entities, caps counts.Caps) (Conflicts, error) {
	if repo == nil {
		repo = NoopRepository{}
	}

	persisted, err := repo.FindTimetable(ctx, candidate.Day, candidate.CourseID, candidate.GroupID, candidate.TeacherID, candidate.ClassroomID, candidate.ExcludeEntryID)
	if err != nil {
		return nil, err
	}

	samedayPending := make([]Entry, 0, len(pending))
	for _, p := range pending {
		if p.Day == candidate.Day {
			samedayPending = append(samedayPending, p)
		}
	}

	all := make([]Entry, 0, len(persisted)+len(samedayPending))
	all = append(all, persisted...)
	all = append(all, samedayPending...)

	var out Conflicts

	countEntries := make([]counts.Entry, 0, len(all)+1)
	for _, e := range all {
		countEntries = append(countEntries, counts.Entry{TeacherID: e.TeacherID, GroupID: e.GroupID, ClassroomID: e.ClassroomID})
	}
	countCandidate := counts.Entry{TeacherID: candidate.TeacherID, GroupID: candidate.GroupID, ClassroomID: candidate.ClassroomID}
	countEntries = append(countEntries, countCandidate)
	for _, msg := range counts.Check(countEntries, countCandidate, caps) {
		out = append(out, Conflict{Kind: CapExceeded, Message: msg})
	}

	teacherName := entities.Teacher.label("Teacher")
	classroomName := entities.Classroom.label("Classroom")
	groupName := entities.Group.label("Student group")

	for _, e := range all {
		if !timeutil.Overlaps(candidate.StartTime, candidate.EndTime, e.StartTime, e.EndTime) {
			continue
		}
		if e.CourseID == candidate.CourseID {
			out = append(out, Conflict{Kind: DuplicateCourse, Message: fmt.Sprintf("Course %s already scheduled at this time", candidate.CourseID)})
		}
		if e.GroupID == candidate.GroupID {
			out = append(out, Conflict{Kind: DuplicateGroup, Message: fmt.Sprintf("Student group %s already has a class at this time", groupName)})
		}
		if e.ClassroomID == candidate.ClassroomID {
			out = append(out, Conflict{Kind: DuplicateClassroom, Message: fmt.Sprintf("Classroom %s is already booked at this time", classroomName)})
		}
		if e.TeacherID == candidate.TeacherID {
			out = append(out, Conflict{Kind: DuplicateTeacher, Message: fmt.Sprintf("Teacher %s already has a class at this time", teacherName)})
		}
	}

	if entities.Teacher != nil {
		if !availability.Within(entities.Teacher.availabilityEntity(), candidate.Day, candidate.StartTime, candidate.EndTime) {
			out = append(out, Conflict{Kind: NotAvailable, Message: fmt.Sprintf("Teacher %s is not available at this time", teacherName)})
		}
	}
	if entities.Classroom != nil {
		if !availability.Within(entities.Classroom.availabilityEntity(), candidate.Day, candidate.StartTime, candidate.EndTime) {
			out = append(out, Conflict{Kind: NotAvailable, Message: fmt.Sprintf("Classroom %s is not available at this time", classroomName)})
		}
	}
	if entities.Group != nil {
		if !availability.Within(entities.Group.availabilityEntity(), candidate.Day, candidate.StartTime, candidate.EndTime) {
			out = append(out, Conflict{Kind: NotAvailable, Message: fmt.Sprintf("Student group %s is not available at this time", groupName)})
		}
	}

	return out, nil
}
