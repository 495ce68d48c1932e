// Package genetic implements the genetic-algorithm timetable optimizer:
// tournament selection, single-point crossover, per-gene mutation, and
// elitism over a population of full-schedule chromosomes.
package genetic

import (
	"context"
	"math"
	"math/rand"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/conflict"
	"campus-core/internal/scheduling/counts"
	"campus-core/internal/scheduling/timeutil"

	"github.com/google/uuid"
)

// Gene is one placement within a chromosome. It carries its own teacher and
// group availability/blackout windows (copied from the Session it was
// placed for) so the fitness function can run the same availability check
// the conflict kernel runs elsewhere, without needing the original Session
// slice or a repository round-trip.
type Gene struct {
	CourseID          uuid.UUID
	GroupID           uuid.UUID
	TeacherID         uuid.UUID
	ClassroomID       uuid.UUID
	Day               models.DayOfWeek
	StartTime         string
	EndTime           string
	Duration          int
	RequiredCapacity  int
	Unschedulable     bool
	TeacherAvailable  models.DayIntervals
	TeacherBlackout   models.DayIntervals
	GroupAvailable    models.DayIntervals
	GroupBlackout     models.DayIntervals
}

// Chromosome is a candidate complete schedule: one gene per required
// session.
type Chromosome []Gene

// Session is one (course, group, frequency-index) requirement the
// chromosome must place. The availability/blackout fields are the
// assigned teacher's and student group's declared windows, threaded through
// so the fitness function can score availability violations as well as
// uniqueness/capacity ones.
type Session struct {
	CourseID         uuid.UUID
	GroupID          uuid.UUID
	TeacherID        uuid.UUID
	Duration         int
	RequiredCapacity int
	TeacherAvailable models.DayIntervals
	TeacherBlackout  models.DayIntervals
	GroupAvailable   models.DayIntervals
	GroupBlackout    models.DayIntervals
}

// Params configures a single optimizer run.
type Params struct {
	PopulationSize int
	MaxGenerations int
	MutationRate   float64
	CrossoverRate  float64
	ElitismRate    float64
	SlotStart      string
	SlotEnd        string
	SlotStep       int
	Caps           counts.Caps
	Rand           *rand.Rand // seeded RNG; nil uses a fresh unseeded source
}

// Fitness holds a chromosome's scored violations.
type Fitness struct {
	Score float64
	Hard  int
	Soft  int
}

// Result is the optimizer's output.
type Result struct {
	Schedule       Chromosome
	Fitness        Fitness
	Generations    int
	PopulationSize int
}

func withDefaults(p Params) Params {
	if p.PopulationSize <= 0 {
		p.PopulationSize = 50
	}
	if p.MaxGenerations <= 0 {
		p.MaxGenerations = 100
	}
	if p.MutationRate <= 0 {
		p.MutationRate = 0.1
	}
	if p.CrossoverRate <= 0 {
		p.CrossoverRate = 0.8
	}
	if p.ElitismRate <= 0 {
		p.ElitismRate = 0.1
	}
	if p.SlotStart == "" {
		p.SlotStart = timeutil.DefaultStart
	}
	if p.SlotEnd == "" {
		p.SlotEnd = timeutil.DefaultEnd
	}
	if p.SlotStep <= 0 {
		p.SlotStep = timeutil.DefaultStep
	}
	if p.Caps == (counts.Caps{}) {
		p.Caps = counts.DefaultCaps
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(1))
	}
	return p
}

// Run evolves a population of chromosomes over sessions/classrooms and
// returns the best-ever schedule found.
func Run(ctx context.Context, sessions []Session, classrooms []models.Classroom, params Params) (*Result, error) {
	params = withDefaults(params)
	slots, err := timeutil.GenerateSlots(params.SlotStart, params.SlotEnd, params.SlotStep, params.SlotStep)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		slots = []string{params.SlotStart}
	}

	classroomsByID := make(map[uuid.UUID]models.Classroom, len(classrooms))
	for _, c := range classrooms {
		classroomsByID[c.ID] = c
	}

	population := make([]Chromosome, params.PopulationSize)
	for i := range population {
		population[i] = randomChromosome(sessions, classrooms, slots, params)
	}

	var best Chromosome
	bestFitness := Fitness{Score: math.MaxFloat64}
	generationsWithoutImprovement := 0
	generation := 0

	for ; generation < params.MaxGenerations; generation++ {
		select {
		case <-ctx.Done():
			return &Result{Schedule: best, Fitness: bestFitness, Generations: generation, PopulationSize: params.PopulationSize}, ctx.Err()
		default:
		}

		scored := make([]Fitness, len(population))
		for i, chromo := range population {
			scored[i] = evaluate(chromo, params.Caps, classroomsByID)
		}

		for i, f := range scored {
			if f.Score < bestFitness.Score {
				bestFitness = f
				best = cloneChromosome(population[i])
				generationsWithoutImprovement = 0
			}
		}

		if generationsWithoutImprovement >= 20 && bestFitness.Score < 100 {
			generation++
			break
		}

		eliteCount := int(math.Floor(float64(params.PopulationSize) * params.ElitismRate))
		next := make([]Chromosome, 0, params.PopulationSize)
		eliteIdx := rankByFitness(scored)
		for i := 0; i < eliteCount && i < len(eliteIdx); i++ {
			next = append(next, cloneChromosome(population[eliteIdx[i]]))
		}

		for len(next) < params.PopulationSize {
			parent1 := tournamentSelect(population, scored, params.Rand)
			parent2 := tournamentSelect(population, scored, params.Rand)
			child1, child2 := crossover(parent1, parent2, params.CrossoverRate, params.Rand)
			mutate(child1, classrooms, slots, params)
			mutate(child2, classrooms, slots, params)
			next = append(next, child1)
			if len(next) < params.PopulationSize {
				next = append(next, child2)
			}
		}

		population = next
		generationsWithoutImprovement++
	}

	return &Result{Schedule: best, Fitness: bestFitness, Generations: generation, PopulationSize: params.PopulationSize}, nil
}

func randomChromosome(sessions []Session, classrooms []models.Classroom, slots []string, params Params) Chromosome {
	chromo := make(Chromosome, len(sessions))
	for i, s := range sessions {
		day := models.SchedulingDays[params.Rand.Intn(len(models.SchedulingDays))]
		start := slots[params.Rand.Intn(len(slots))]

		classroomID, ok := randomClassroomFor(s.RequiredCapacity, classrooms, params.Rand)
		gene := Gene{
			CourseID: s.CourseID, GroupID: s.GroupID, TeacherID: s.TeacherID,
			Duration: s.Duration, RequiredCapacity: s.RequiredCapacity,
			Day: day, StartTime: start, EndTime: timeutil.EndOf(start, s.Duration),
			TeacherAvailable: s.TeacherAvailable, TeacherBlackout: s.TeacherBlackout,
			GroupAvailable: s.GroupAvailable, GroupBlackout: s.GroupBlackout,
		}
		if ok {
			gene.ClassroomID = classroomID
		} else {
			gene.Unschedulable = true
		}
		chromo[i] = gene
	}
	return chromo
}

// randomClassroomFor picks uniformly among classrooms meeting capacity. No
// any-classroom fallback: a session with no capacity-qualified classroom is
// marked unschedulable instead of injecting an invalid gene.
func randomClassroomFor(requiredCapacity int, classrooms []models.Classroom, r *rand.Rand) (uuid.UUID, bool) {
	var qualified []uuid.UUID
	for _, c := range classrooms {
		if c.Capacity >= requiredCapacity {
			qualified = append(qualified, c.ID)
		}
	}
	if len(qualified) == 0 {
		return uuid.Nil, false
	}
	return qualified[r.Intn(len(qualified))], true
}

func cloneChromosome(c Chromosome) Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// evaluate runs the conflict kernel over an empty persisted set (pure
// in-memory fitness evaluation) with the rest of the chromosome as pending,
// classifying conflicts by Kind and summing the weighted fitness formula.
// Each gene's own teacher/group availability data and the looked-up
// classroom's availability data are passed through so the kernel's
// NotAvailable branch is actually exercised.
func evaluate(chromo Chromosome, caps counts.Caps, classroomsByID map[uuid.UUID]models.Classroom) Fitness {
	var hard, soft int

	for i, gene := range chromo {
		if gene.Unschedulable {
			hard++
			continue
		}
		pending := make([]conflict.Entry, 0, len(chromo)-1)
		for j, other := range chromo {
			if i == j || other.Unschedulable {
				continue
			}
			pending = append(pending, conflict.Entry{
				CourseID: other.CourseID, GroupID: other.GroupID, TeacherID: other.TeacherID,
				ClassroomID: other.ClassroomID, Day: other.Day, StartTime: other.StartTime, EndTime: other.EndTime,
			})
		}

		candidate := conflict.Candidate{
			CourseID: gene.CourseID, GroupID: gene.GroupID, TeacherID: gene.TeacherID,
			ClassroomID: gene.ClassroomID, Day: gene.Day, StartTime: gene.StartTime, EndTime: gene.EndTime,
		}
		entities := conflict.Entities{
			Teacher: &conflict.Entity{ID: gene.TeacherID, Availability: gene.TeacherAvailable, BlackoutPeriods: gene.TeacherBlackout},
			Group:   &conflict.Entity{ID: gene.GroupID, Availability: gene.GroupAvailable, BlackoutPeriods: gene.GroupBlackout},
		}
		if room, ok := classroomsByID[gene.ClassroomID]; ok {
			entities.Classroom = &conflict.Entity{
				ID:              room.ID,
				Availability:    models.DayIntervals(room.Availability),
				BlackoutPeriods: models.DayIntervals(room.BlackoutPeriods),
			}
		}
		conflicts, _ := conflict.Check(context.Background(), conflict.NoopRepository{}, candidate, pending, entities, caps)
		for _, c := range conflicts {
			if c.Kind == conflict.NotAvailable {
				soft++
			} else {
				hard++
			}
		}
	}

	dayVariance := stdDevByKey(chromo, func(g Gene) string { return string(g.Day) })
	teacherVariance := stdDevByKey(chromo, func(g Gene) string { return g.TeacherID.String() })

	score := 1000*float64(hard) + 100*float64(soft) + 10*dayVariance + 5*teacherVariance
	return Fitness{Score: score, Hard: hard, Soft: soft}
}

func stdDevByKey(chromo Chromosome, key func(Gene) string) float64 {
	counts := make(map[string]int)
	for _, g := range chromo {
		counts[key(g)]++
	}
	if len(counts) == 0 {
		return 0
	}
	var sum float64
	for _, c := range counts {
		sum += float64(c)
	}
	mean := sum / float64(len(counts))
	var variance float64
	for _, c := range counts {
		diff := float64(c) - mean
		variance += diff * diff
	}
	variance /= float64(len(counts))
	return math.Sqrt(variance)
}

func rankByFitness(scored []Fitness) []int {
	idx := make([]int, len(scored))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		j := i
		for j > 0 && scored[idx[j]].Score < scored[idx[j-1]].Score {
			idx[j], idx[j-1] = idx[j-1], idx[j]
			j--
		}
	}
	return idx
}

func tournamentSelect(population []Chromosome, scored []Fitness, r *rand.Rand) Chromosome {
	best := -1
	for i := 0; i < 3; i++ {
		candidate := r.Intn(len(population))
		if best == -1 || scored[candidate].Score < scored[best].Score {
			best = candidate
		}
	}
	return population[best]
}

func crossover(p1, p2 Chromosome, rate float64, r *rand.Rand) (Chromosome, Chromosome) {
	if r.Float64() >= rate {
		return cloneChromosome(p1), cloneChromosome(p2)
	}
	minLen := len(p1)
	if len(p2) < minLen {
		minLen = len(p2)
	}
	if minLen == 0 {
		return cloneChromosome(p1), cloneChromosome(p2)
	}
	cut := r.Intn(minLen)

	child1 := append(cloneChromosome(p1[:cut]), p2[cut:]...)
	child2 := append(cloneChromosome(p2[:cut]), p1[cut:]...)
	return child1, child2
}

func mutate(chromo Chromosome, classrooms []models.Classroom, slots []string, params Params) {
	for i := range chromo {
		if params.Rand.Float64() >= params.MutationRate {
			continue
		}
		switch params.Rand.Intn(3) {
		case 0:
			chromo[i].StartTime = slots[params.Rand.Intn(len(slots))]
			chromo[i].EndTime = timeutil.EndOf(chromo[i].StartTime, chromo[i].Duration)
		case 1:
			chromo[i].Day = models.SchedulingDays[params.Rand.Intn(len(models.SchedulingDays))]
		case 2:
			if id, ok := randomClassroomFor(chromo[i].RequiredCapacity, classrooms, params.Rand); ok {
				chromo[i].ClassroomID = id
				chromo[i].Unschedulable = false
			}
		}
	}
}
