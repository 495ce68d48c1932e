package genetic

import (
	"context"
	"math/rand"
	"testing"

	"campus-core/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSessions() ([]Session, []models.Classroom) {
	teacherID := uuid.New()
	groupID := uuid.New()
	courseID := uuid.New()

	sessions := []Session{
		{CourseID: courseID, GroupID: groupID, TeacherID: teacherID, Duration: 60, RequiredCapacity: 20},
		{CourseID: courseID, GroupID: groupID, TeacherID: teacherID, Duration: 60, RequiredCapacity: 20},
	}
	classrooms := []models.Classroom{
		{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}}, Name: "R1", Capacity: 30},
	}
	return sessions, classrooms
}

func TestRunConvergesToZeroHardViolationsWhenFeasible(t *testing.T) {
	sessions, classrooms := sampleSessions()
	result, err := Run(context.Background(), sessions, classrooms, Params{
		PopulationSize: 30, MaxGenerations: 60, Rand: rand.New(rand.NewSource(42)),
	})
	require.NoError(t, err)
	assert.Zero(t, result.Fitness.Hard,
		"expected a feasible schedule with ample rooms/slots, got hard=%d soft=%d score=%f",
		result.Fitness.Hard, result.Fitness.Soft, result.Fitness.Score)
}

func TestRunMarksUnschedulableWhenNoClassroomQualifies(t *testing.T) {
	sessions := []Session{
		{CourseID: uuid.New(), GroupID: uuid.New(), TeacherID: uuid.New(), Duration: 60, RequiredCapacity: 200},
	}
	classrooms := []models.Classroom{
		{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}}, Name: "Small", Capacity: 10},
	}
	result, err := Run(context.Background(), sessions, classrooms, Params{
		PopulationSize: 10, MaxGenerations: 5, Rand: rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)
	found := false
	for _, gene := range result.Schedule {
		if gene.Unschedulable {
			found = true
		}
	}
	assert.True(t, found,
		"expected the best chromosome to mark the oversized session unschedulable rather than assign an invalid classroom")
}

func TestTournamentSelectPrefersLowerScore(t *testing.T) {
	population := []Chromosome{{{Duration: 60}}, {{Duration: 60}}, {{Duration: 60}}}
	scored := []Fitness{{Score: 500}, {Score: 10}, {Score: 900}}
	r := rand.New(rand.NewSource(1))

	wins := 0
	for i := 0; i < 50; i++ {
		selected := tournamentSelect(population, scored, r)
		if &selected[0] == &population[1][0] {
			wins++
		}
	}
	assert.Positive(t, wins,
		"expected the lowest-scoring chromosome to win at least one tournament across 50 draws")
}
