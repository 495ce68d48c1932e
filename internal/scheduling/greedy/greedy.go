// Package greedy implements the deterministic first-fit timetable
// generator: for every course session it sweeps day, start-time, and
// classroom in fixed input order and accepts the first placement the
// conflict kernel clears.
package greedy

import (
	"context"
	"fmt"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/conflict"
	"campus-core/internal/scheduling/counts"
	"campus-core/internal/scheduling/timeutil"

	"github.com/google/uuid"
)

// Params configures a single generation run.
type Params struct {
	Semester     string
	AcademicYear string
	Department   string
	SlotStart    string
	SlotEnd      string
	SlotStep     int
	Caps         counts.Caps
	Debug        bool
}

// Input is the entity snapshot a caller loads through the repository
// before invoking Generate.
type Input struct {
	Courses       []models.Course
	Classrooms    []models.Classroom
	StudentGroups map[uuid.UUID]models.StudentGroup
	Teachers      map[uuid.UUID]models.Teacher
}

// Unscheduled records a session the generator could not place.
type Unscheduled struct {
	CourseID  uuid.UUID
	GroupID   uuid.UUID
	Session   int
	Conflicts []string
}

// Result is the greedy generator's output.
type Result struct {
	Schedule    []models.TimetableEntry
	Unscheduled []Unscheduled
}

func entityFromGroup(g *models.StudentGroup) *conflict.Entity {
	if g == nil {
		return nil
	}
	return &conflict.Entity{
		ID:              g.ID,
		Name:            g.Name,
		Availability:    models.DayIntervals(g.Availability),
		BlackoutPeriods: models.DayIntervals(g.BlackoutPeriods),
	}
}

func entityFromClassroom(c *models.Classroom) *conflict.Entity {
	if c == nil {
		return nil
	}
	return &conflict.Entity{
		ID:              c.ID,
		Name:            c.Name,
		Availability:    models.DayIntervals(c.Availability),
		BlackoutPeriods: models.DayIntervals(c.BlackoutPeriods),
	}
}

func entityFromTeacher(t *models.Teacher) *conflict.Entity {
	if t == nil {
		return nil
	}
	name := t.ID.String()
	if t.User != nil {
		name = t.User.Email
	}
	return &conflict.Entity{
		ID:              t.ID,
		Name:            name,
		Availability:    models.DayIntervals(t.Availability),
		BlackoutPeriods: models.DayIntervals(t.BlackoutPeriods),
	}
}

// Generate runs the greedy first-fit sweep: for every required session it
// walks days, start slots, then capacity-qualified classrooms in order and
// takes the first conflict-free placement.
func Generate(ctx context.Context, repo conflict.Repository, input Input, params Params) (*Result, error) {
	if params.SlotStep <= 0 {
		params.SlotStep = timeutil.DefaultStep
	}
	if params.SlotStart == "" {
		params.SlotStart = timeutil.DefaultStart
	}
	if params.SlotEnd == "" {
		params.SlotEnd = timeutil.DefaultEnd
	}
	if params.Caps == (counts.Caps{}) {
		params.Caps = counts.DefaultCaps
	}

	result := &Result{}
	var pending []conflict.Entry

	for _, course := range input.Courses {
		teacher := input.Teachers[course.TeacherID]

		for _, group := range course.StudentGroups {
			for session := 0; session < course.Frequency; session++ {
				scheduled := false
				var lastConflicts []string

			daysLoop:
				for _, day := range models.SchedulingDays {
					slots, err := timeutil.GenerateSlots(params.SlotStart, params.SlotEnd, params.SlotStep, course.Duration)
					if err != nil {
						return nil, fmt.Errorf("greedy: %w", err)
					}
					for _, start := range slots {
						end := timeutil.EndOf(start, course.Duration)

						for _, classroom := range input.Classrooms {
							if classroom.Capacity < group.Size {
								continue
							}

							candidate := conflict.Candidate{
								CourseID:    course.ID,
								GroupID:     group.ID,
								TeacherID:   course.TeacherID,
								ClassroomID: classroom.ID,
								Day:         day,
								StartTime:   start,
								EndTime:     end,
							}
							entities := conflict.Entities{
								Teacher:   entityFromTeacher(&teacher),
								Classroom: entityFromClassroom(&classroom),
								Group:     entityFromGroup(&group),
							}

							conflicts, err := conflict.Check(ctx, repo, candidate, pending, entities, params.Caps)
							if err != nil {
								return nil, fmt.Errorf("greedy: conflict check: %w", err)
							}
							if len(conflicts) == 0 {
								entry := models.TimetableEntry{
									CourseID:       course.ID,
									StudentGroupID: group.ID,
									TeacherID:      course.TeacherID,
									ClassroomID:    classroom.ID,
									DayOfWeek:      day,
									StartTime:      start,
									EndTime:        end,
									Duration:       course.Duration,
									Semester:       params.Semester,
									AcademicYear:   params.AcademicYear,
									AcademicYearID: course.AcademicYearID,
									InstitutionID:  course.InstitutionID,
									Status:         models.TimetableStatusScheduled,
								}
								result.Schedule = append(result.Schedule, entry)
								pending = append(pending, conflict.Entry{
									CourseID: course.ID, GroupID: group.ID, TeacherID: course.TeacherID,
									ClassroomID: classroom.ID, Day: day, StartTime: start, EndTime: end,
								})
								scheduled = true
								break daysLoop
							}
							lastConflicts = conflicts.Strings()
						}
					}
				}

				if !scheduled {
					u := Unscheduled{CourseID: course.ID, GroupID: group.ID, Session: session}
					if params.Debug {
						u.Conflicts = lastConflicts
					}
					result.Unscheduled = append(result.Unscheduled, u)
				}
			}
		}
	}

	return result, nil
}
