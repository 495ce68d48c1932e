package coloring

import (
	"context"
	"testing"

	"campus-core/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCourses() []models.Course {
	teacherID := uuid.New()
	group := models.StudentGroup{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}}, Name: "G1", Size: 20}
	return []models.Course{
		{
			TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}},
			Name:            "Math",
			Duration:        60,
			Frequency:       2,
			TeacherID:       teacherID,
			StudentGroups:   []models.StudentGroup{group},
		},
	}
}

func TestBuildGraphEdgesShareTeacherAndGroup(t *testing.T) {
	g := BuildGraph(sampleCourses())
	require.Len(t, g.Nodes, 2, "frequency=2 should yield 2 nodes")
	assert.True(t, g.Adjacency[0][1],
		"the two sessions of the same course/teacher/group must be adjacent")
}

func TestColorWelshPowellProducesNonOverlappingSchedule(t *testing.T) {
	courses := sampleCourses()
	g := BuildGraph(courses)
	cs, err := BuildColorSpace("09:00", "17:00", 60)
	require.NoError(t, err)
	classroom := models.Classroom{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}}, Name: "R1", Capacity: 30}

	result, err := Color(context.Background(), g, []models.Classroom{classroom}, cs, WelshPowell, "17:00", CourseMeta{})
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalSlots, "expected both sessions scheduled, unscheduled=%d", result.Unscheduled)
	sameSlot := result.Schedule[0].DayOfWeek == result.Schedule[1].DayOfWeek &&
		result.Schedule[0].StartTime == result.Schedule[1].StartTime
	assert.False(t, sameSlot, "adjacent nodes must not receive the same color")
}

func TestColorDSATURRespectsCapacity(t *testing.T) {
	courses := sampleCourses()
	g := BuildGraph(courses)
	cs, err := BuildColorSpace("09:00", "17:00", 60)
	require.NoError(t, err)
	tooSmall := models.Classroom{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}}, Name: "Small", Capacity: 5}

	result, err := Color(context.Background(), g, []models.Classroom{tooSmall}, cs, DSATUR, "17:00", CourseMeta{})
	require.NoError(t, err)
	assert.Zero(t, result.TotalSlots, "expected no placements when no classroom meets capacity")
}
