package compare

import (
	"context"
	"testing"

	"campus-core/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() Input {
	teacherID := uuid.New()
	groupID := uuid.New()
	courseID := uuid.New()

	group := models.StudentGroup{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: groupID}}, Name: "G1", Size: 20}
	classroom := models.Classroom{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}}, Name: "R1", Capacity: 30}
	course := models.Course{
		TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: courseID}},
		Name:            "Math", Duration: 60, Frequency: 2, TeacherID: teacherID,
		StudentGroups: []models.StudentGroup{group},
	}
	teacher := models.Teacher{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: teacherID}}}

	return Input{
		Courses:       []models.Course{course},
		Classrooms:    []models.Classroom{classroom},
		StudentGroups: map[uuid.UUID]models.StudentGroup{groupID: group},
		Teachers:      map[uuid.UUID]models.Teacher{teacherID: teacher},
	}
}

func TestRunReturnsAllThreeAlgorithmsIndependently(t *testing.T) {
	outcomes := Run(context.Background(), sampleInput(), Params{
		Semester: "Fall2026", AcademicYear: "2026",
		GeneticPopulationSize: 10, GeneticMaxGenerations: 5,
	})
	require.Len(t, outcomes, 3)
	seen := map[AlgorithmName]bool{}
	for _, o := range outcomes {
		seen[o.Algorithm] = true
		require.NoError(t, o.Err, "algorithm %s failed", o.Algorithm)
	}
	for _, name := range []AlgorithmName{DSATUR, WelshPowell, Genetic} {
		assert.True(t, seen[name], "missing outcome for %s", name)
	}
}

func TestRunColoringSchedulesBothSessions(t *testing.T) {
	outcomes := Run(context.Background(), sampleInput(), Params{GeneticPopulationSize: 5, GeneticMaxGenerations: 3})
	for _, o := range outcomes {
		if o.Algorithm == Genetic {
			continue // genetic is stochastic; convergence is covered in its own package tests
		}
		assert.Equal(t, 2, o.TotalSlots, "%s: expected both sessions scheduled", o.Algorithm)
	}
}
