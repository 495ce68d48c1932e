// Package compare runs the timetable generators side by side over the same
// input and reports comparable metrics per algorithm, so a caller can pick
// the best result without committing to one generator up front.
package compare

import (
	"context"
	"fmt"
	"math/rand"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/coloring"
	"campus-core/internal/scheduling/counts"
	"campus-core/internal/scheduling/genetic"

	"github.com/google/uuid"
)

// AlgorithmName identifies one of the comparable generators. Greedy is the
// deterministic baseline behind its own endpoint, not a comparison
// candidate.
type AlgorithmName string

const (
	WelshPowell AlgorithmName = "welsh-powell"
	DSATUR      AlgorithmName = "dsatur"
	Genetic     AlgorithmName = "genetic"
)

// Outcome is one algorithm's run result, normalized for comparison.
type Outcome struct {
	Algorithm    AlgorithmName
	Schedule     []models.TimetableEntry
	TotalSlots   int
	Unscheduled  int
	SuccessRate  float64
	HardViolations int
	SoftViolations int
	FitnessScore float64
	Err          error
}

// Input is the entity snapshot shared across every algorithm in the run.
type Input struct {
	Courses       []models.Course
	Classrooms    []models.Classroom
	StudentGroups map[uuid.UUID]models.StudentGroup
	Teachers      map[uuid.UUID]models.Teacher
}

// Params configures the comparison run. Generation-specific knobs fall back
// to each algorithm's own defaults when zero.
type Params struct {
	Semester       string
	AcademicYear   string
	AcademicYearID uuid.UUID
	InstitutionID  uuid.UUID
	SlotStart      string
	SlotEnd        string
	SlotStep       int
	Caps           counts.Caps

	// GeneticPopulationSize and GeneticMaxGenerations are deliberately kept
	// small for comparison runs so all three algorithms return in comparable
	// time; a caller wanting a full optimization run invokes genetic.Run
	// directly with production-sized parameters.
	GeneticPopulationSize int
	GeneticMaxGenerations int
	GeneticSeed           int64
}

func totalSessions(courses []models.Course) int {
	total := 0
	for _, c := range courses {
		total += c.Frequency * len(c.StudentGroups)
	}
	return total
}

// Run executes DSATUR, Welsh-Powell, and the genetic optimizer against the
// same input, capturing each algorithm's own failure independently so one
// algorithm erroring never aborts its peers.
func Run(ctx context.Context, input Input, params Params) []Outcome {
	required := totalSessions(input.Courses)
	outcomes := make([]Outcome, 0, 3)

	outcomes = append(outcomes, runColoring(ctx, input, params, coloring.DSATUR, DSATUR, required))
	outcomes = append(outcomes, runColoring(ctx, input, params, coloring.WelshPowell, WelshPowell, required))
	outcomes = append(outcomes, runGenetic(ctx, input, params, required))

	return outcomes
}

func successRate(scheduled, required int) float64 {
	if required == 0 {
		return 100
	}
	return float64(scheduled) / float64(required) * 100
}

func runColoring(ctx context.Context, input Input, params Params, algo coloring.Algorithm, name AlgorithmName, required int) Outcome {
	slotStart, slotEnd, slotStep := params.SlotStart, params.SlotEnd, params.SlotStep
	if slotStep <= 0 {
		slotStep = 60
	}
	if slotStart == "" {
		slotStart = "09:00"
	}
	if slotEnd == "" {
		slotEnd = "17:00"
	}

	graph := coloring.BuildGraph(input.Courses)
	cs, err := coloring.BuildColorSpace(slotStart, slotEnd, slotStep)
	if err != nil {
		return Outcome{Algorithm: name, Err: fmt.Errorf("%s: %w", name, err)}
	}

	result, err := coloring.Color(ctx, graph, input.Classrooms, cs, algo, slotEnd, coloring.CourseMeta{
		Semester: params.Semester, AcademicYear: params.AcademicYear,
		AcademicYearID: params.AcademicYearID, InstitutionID: params.InstitutionID,
	})
	if err != nil {
		return Outcome{Algorithm: name, Err: fmt.Errorf("%s: %w", name, err)}
	}
	return Outcome{
		Algorithm:   name,
		Schedule:    result.Schedule,
		TotalSlots:  result.TotalSlots,
		Unscheduled: result.Unscheduled,
		SuccessRate: successRate(result.TotalSlots, required),
	}
}

func runGenetic(ctx context.Context, input Input, params Params, required int) Outcome {
	var sessions []genetic.Session
	for _, course := range input.Courses {
		teacher := input.Teachers[course.TeacherID]
		for _, group := range course.StudentGroups {
			for i := 0; i < course.Frequency; i++ {
				sessions = append(sessions, genetic.Session{
					CourseID: course.ID, GroupID: group.ID, TeacherID: course.TeacherID,
					Duration: course.Duration, RequiredCapacity: group.Size,
					TeacherAvailable: models.DayIntervals(teacher.Availability), TeacherBlackout: models.DayIntervals(teacher.BlackoutPeriods),
					GroupAvailable: models.DayIntervals(group.Availability), GroupBlackout: models.DayIntervals(group.BlackoutPeriods),
				})
			}
		}
	}

	populationSize := params.GeneticPopulationSize
	if populationSize <= 0 {
		populationSize = 20
	}
	maxGenerations := params.GeneticMaxGenerations
	if maxGenerations <= 0 {
		maxGenerations = 30
	}
	seed := params.GeneticSeed
	if seed == 0 {
		seed = 1
	}

	result, err := genetic.Run(ctx, sessions, input.Classrooms, genetic.Params{
		PopulationSize: populationSize,
		MaxGenerations: maxGenerations,
		SlotStart:      params.SlotStart, SlotEnd: params.SlotEnd, SlotStep: params.SlotStep,
		Caps: params.Caps,
		Rand: rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return Outcome{Algorithm: Genetic, Err: fmt.Errorf("genetic: %w", err)}
	}

	scheduled := 0
	var schedule []models.TimetableEntry
	for _, gene := range result.Schedule {
		if gene.Unschedulable {
			continue
		}
		scheduled++
		schedule = append(schedule, models.TimetableEntry{
			CourseID: gene.CourseID, StudentGroupID: gene.GroupID, TeacherID: gene.TeacherID,
			ClassroomID: gene.ClassroomID, DayOfWeek: gene.Day, StartTime: gene.StartTime, EndTime: gene.EndTime,
			Duration: gene.Duration, Semester: params.Semester, AcademicYear: params.AcademicYear,
			AcademicYearID: params.AcademicYearID, InstitutionID: params.InstitutionID,
			Status: models.TimetableStatusScheduled,
		})
	}

	return Outcome{
		Algorithm:      Genetic,
		Schedule:       schedule,
		TotalSlots:     scheduled,
		Unscheduled:    len(result.Schedule) - scheduled,
		SuccessRate:    successRate(scheduled, required),
		HardViolations: result.Fitness.Hard,
		SoftViolations: result.Fitness.Soft,
		FitnessScore:   result.Fitness.Score,
	}
}
