package greedy

import (
	"context"
	"testing"

	"campus-core/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchedulesWithinCapacityAndCaps(t *testing.T) {
	teacherID := uuid.New()
	groupID := uuid.New()
	classroomID := uuid.New()
	courseID := uuid.New()

	group := models.StudentGroup{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: groupID}}, Name: "G1", Size: 20}
	classroom := models.Classroom{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: classroomID}}, Name: "R1", Capacity: 30}
	course := models.Course{
		TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: courseID}},
		Name:            "Math",
		Duration:        60,
		Frequency:       2,
		TeacherID:       teacherID,
		StudentGroups:   []models.StudentGroup{group},
	}
	teacher := models.Teacher{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: teacherID}}}

	input := Input{
		Courses:       []models.Course{course},
		Classrooms:    []models.Classroom{classroom},
		StudentGroups: map[uuid.UUID]models.StudentGroup{groupID: group},
		Teachers:      map[uuid.UUID]models.Teacher{teacherID: teacher},
	}

	result, err := Generate(context.Background(), nil, input, Params{Semester: "Fall2026", AcademicYear: "2026"})
	require.NoError(t, err)
	require.Len(t, result.Schedule, 2, "expected 2 scheduled sessions, unscheduled=%v", result.Unscheduled)
	for _, entry := range result.Schedule {
		assert.Equal(t, classroomID, entry.ClassroomID)
	}
	// the two sessions must not overlap on the same day/time since they share teacher+group
	sameSlot := result.Schedule[0].DayOfWeek == result.Schedule[1].DayOfWeek &&
		result.Schedule[0].StartTime == result.Schedule[1].StartTime
	assert.False(t, sameSlot, "expected the two sessions to be placed at distinct day/time slots")
}

func TestGenerateSkipsUndersizedClassrooms(t *testing.T) {
	teacherID := uuid.New()
	groupID := uuid.New()
	smallRoomID := uuid.New()
	courseID := uuid.New()

	group := models.StudentGroup{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: groupID}}, Name: "G1", Size: 50}
	smallRoom := models.Classroom{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: smallRoomID}}, Name: "Small", Capacity: 10}
	course := models.Course{
		TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: courseID}},
		Name:            "Math",
		Duration:        60,
		Frequency:       1,
		TeacherID:       teacherID,
		StudentGroups:   []models.StudentGroup{group},
	}

	input := Input{
		Courses:    []models.Course{course},
		Classrooms: []models.Classroom{smallRoom},
	}

	result, err := Generate(context.Background(), nil, input, Params{})
	require.NoError(t, err)
	assert.Empty(t, result.Schedule, "expected no placements when no classroom meets capacity")
	assert.Len(t, result.Unscheduled, 1)
}
