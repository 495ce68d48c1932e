package conflict

import (
	"context"
	"strings"
	"testing"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/counts"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateFor(teacher, group, classroom, course uuid.UUID) Candidate {
	return Candidate{
		CourseID:    course,
		GroupID:     group,
		TeacherID:   teacher,
		ClassroomID: classroom,
		Day:         models.Monday,
		StartTime:   "09:00",
		EndTime:     "10:00",
	}
}

func containsSubstring(messages []string, sub string) bool {
	for _, m := range messages {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}

func TestCheckTeacherPendingConflict(t *testing.T) {
	t1, sg2, cl2, c2 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	pending := []Entry{{TeacherID: t1, GroupID: uuid.New(), ClassroomID: uuid.New(), CourseID: uuid.New(), Day: models.Monday, StartTime: "09:00", EndTime: "10:00"}}

	cand := candidateFor(t1, sg2, cl2, c2)
	result, err := Check(context.Background(), nil, cand, pending, Entities{}, counts.DefaultCaps)
	require.NoError(t, err)
	assert.True(t, containsSubstring(result.Strings(), "Teacher"),
		"expected a Teacher conflict, got %v", result.Strings())
}

func TestCheckGroupPendingConflict(t *testing.T) {
	sg2 := uuid.New()
	pending := []Entry{{TeacherID: uuid.New(), GroupID: sg2, ClassroomID: uuid.New(), CourseID: uuid.New(), Day: models.Monday, StartTime: "09:00", EndTime: "10:00"}}

	cand := candidateFor(uuid.New(), sg2, uuid.New(), uuid.New())
	result, err := Check(context.Background(), nil, cand, pending, Entities{}, counts.DefaultCaps)
	require.NoError(t, err)
	assert.True(t, containsSubstring(result.Strings(), "Student group"),
		"expected a Student group conflict, got %v", result.Strings())
}

func TestCheckClassroomPendingConflict(t *testing.T) {
	cl2 := uuid.New()
	pending := []Entry{{TeacherID: uuid.New(), GroupID: uuid.New(), ClassroomID: cl2, CourseID: uuid.New(), Day: models.Monday, StartTime: "09:00", EndTime: "10:00"}}

	cand := candidateFor(uuid.New(), uuid.New(), cl2, uuid.New())
	result, err := Check(context.Background(), nil, cand, pending, Entities{}, counts.DefaultCaps)
	require.NoError(t, err)
	assert.True(t, containsSubstring(result.Strings(), "Classroom"),
		"expected a Classroom conflict, got %v", result.Strings())
}

func TestCheckTeacherDailyCap(t *testing.T) {
	t1 := uuid.New()
	var pending []Entry
	for i := 0; i < 4; i++ {
		pending = append(pending, Entry{
			TeacherID: t1, GroupID: uuid.New(), ClassroomID: uuid.New(), CourseID: uuid.New(),
			Day: models.Monday, StartTime: "11:00", EndTime: "12:00",
		})
	}

	cand := candidateFor(t1, uuid.New(), uuid.New(), uuid.New())
	result, err := Check(context.Background(), nil, cand, pending, Entities{}, counts.DefaultCaps)
	require.NoError(t, err)
	assert.True(t, containsSubstring(result.Strings(), "maximum daily lectures"),
		"expected a daily cap conflict, got %v", result.Strings())
}

func TestCheckTouchingIntervalsAreNotConflicts(t *testing.T) {
	t1 := uuid.New()
	pending := []Entry{{TeacherID: t1, GroupID: uuid.New(), ClassroomID: uuid.New(), CourseID: uuid.New(), Day: models.Monday, StartTime: "09:00", EndTime: "10:00"}}

	cand := candidateFor(t1, uuid.New(), uuid.New(), uuid.New())
	cand.StartTime = "10:00"
	cand.EndTime = "11:00"

	result, err := Check(context.Background(), nil, cand, pending, Entities{}, counts.DefaultCaps)
	require.NoError(t, err)
	assert.False(t, containsSubstring(result.Strings(), "Teacher"),
		"touching intervals should not conflict, got %v", result.Strings())
}

func TestCheckIsIdempotent(t *testing.T) {
	t1, sg2, cl2, c2 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	pending := []Entry{{TeacherID: t1, GroupID: uuid.New(), ClassroomID: uuid.New(), CourseID: uuid.New(), Day: models.Monday, StartTime: "09:00", EndTime: "10:00"}}
	cand := candidateFor(t1, sg2, cl2, c2)

	first, err := Check(context.Background(), nil, cand, pending, Entities{}, counts.DefaultCaps)
	require.NoError(t, err)
	second, err := Check(context.Background(), nil, cand, pending, Entities{}, counts.DefaultCaps)
	require.NoError(t, err)
	assert.Equal(t, first.Strings(), second.Strings(),
		"repeated checks on the same state should yield the same conflicts")
}

func TestCheckAvailabilityRejection(t *testing.T) {
	teacherID := uuid.New()
	entities := Entities{
		Teacher: &Entity{
			ID:   teacherID,
			Name: "T. Rahman",
			Availability: models.DayIntervals{
				models.Tuesday: {{Start: "09:00", End: "17:00"}},
			},
		},
	}
	cand := candidateFor(teacherID, uuid.New(), uuid.New(), uuid.New())

	result, err := Check(context.Background(), nil, cand, nil, entities, counts.DefaultCaps)
	require.NoError(t, err)
	assert.True(t, containsSubstring(result.Strings(), "not available"),
		"expected availability rejection for a day with no declared window, got %v", result.Strings())
}
