package service

import (
	"context"
	"math/rand"
	"time"

	"campus-core/internal/config"
	"campus-core/internal/dto/request"
	"campus-core/internal/dto/response"
	"campus-core/internal/metrics"
	"campus-core/internal/models"
	"campus-core/internal/repository"
	"campus-core/internal/scheduling/coloring"
	"campus-core/internal/scheduling/compare"
	"campus-core/internal/scheduling/conflict"
	"campus-core/internal/scheduling/counts"
	"campus-core/internal/scheduling/genetic"
	"campus-core/internal/scheduling/greedy"
	"campus-core/internal/scheduling/timeutil"
	"campus-core/internal/utils"

	"github.com/google/uuid"
)

// TimetableService orchestrates the scheduling core — the conflict kernel
// and the greedy, graph-coloring, and genetic generators — behind the CRUD
// and generation operations the handler layer exposes.
type TimetableService struct {
	repo repository.Repository
	cfg  config.SchedulingConfig
}

// NewTimetableService creates a new timetable service.
func NewTimetableService(repo repository.Repository, cfg config.SchedulingConfig) *TimetableService {
	return &TimetableService{repo: repo, cfg: cfg}
}

func (s *TimetableService) caps() counts.Caps {
	caps := counts.Caps{
		Teacher:   s.cfg.MaxTeacherDailyLectures,
		Group:     s.cfg.MaxGroupDailyLectures,
		Classroom: s.cfg.MaxClassroomDailyLectures,
	}
	if caps == (counts.Caps{}) {
		return counts.DefaultCaps
	}
	return caps
}

func (s *TimetableService) slotWindow() (string, string, int) {
	start, end, step := s.cfg.SlotStart, s.cfg.SlotEnd, s.cfg.SlotStep
	if start == "" {
		start = "09:00"
	}
	if end == "" {
		end = "17:00"
	}
	if step <= 0 {
		step = 60
	}
	return start, end, step
}

// resolveEntities loads the teacher, classroom, and group a candidate
// placement touches so the conflict kernel can check their availability and
// blackout windows, the same way greedy.Generate resolves them per candidate.
func (s *TimetableService) resolveEntities(ctx context.Context, institutionID, teacherID, classroomID, groupID uuid.UUID) (conflict.Entities, error) {
	teacher, err := s.repo.FindTeacherByID(ctx, teacherID, institutionID)
	if err != nil {
		return conflict.Entities{}, err
	}
	classroom, err := s.repo.FindClassroomByID(ctx, classroomID, institutionID)
	if err != nil {
		return conflict.Entities{}, err
	}
	group, err := s.repo.FindStudentGroupByID(ctx, groupID, institutionID)
	if err != nil {
		return conflict.Entities{}, err
	}

	teacherName := teacher.ID.String()
	if teacher.User != nil {
		teacherName = teacher.User.Email
	}

	return conflict.Entities{
		Teacher: &conflict.Entity{
			ID:              teacher.ID,
			Name:            teacherName,
			Availability:    models.DayIntervals(teacher.Availability),
			BlackoutPeriods: models.DayIntervals(teacher.BlackoutPeriods),
		},
		Classroom: &conflict.Entity{
			ID:              classroom.ID,
			Name:            classroom.Name,
			Availability:    models.DayIntervals(classroom.Availability),
			BlackoutPeriods: models.DayIntervals(classroom.BlackoutPeriods),
		},
		Group: &conflict.Entity{
			ID:              group.ID,
			Name:            group.Name,
			Availability:    models.DayIntervals(group.Availability),
			BlackoutPeriods: models.DayIntervals(group.BlackoutPeriods),
		},
	}, nil
}

// Create validates a manually entered entry against the conflict kernel and
// persists it if clear.
func (s *TimetableService) Create(ctx context.Context, institutionID uuid.UUID, req *request.CreateTimetableEntryRequest) (*response.TimetableEntryResponse, []string, error) {
	academicYearID, err := uuid.Parse(req.AcademicYearID)
	if err != nil {
		return nil, nil, utils.ErrInvalidUUID
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return nil, nil, utils.ErrInvalidUUID
	}
	groupID, err := uuid.Parse(req.StudentGroupID)
	if err != nil {
		return nil, nil, utils.ErrInvalidUUID
	}
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return nil, nil, utils.ErrInvalidUUID
	}
	classroomID, err := uuid.Parse(req.ClassroomID)
	if err != nil {
		return nil, nil, utils.ErrInvalidUUID
	}

	day := models.DayOfWeek(req.DayOfWeek)
	endTime := timeutil.EndOf(req.StartTime, req.Duration)

	entities, err := s.resolveEntities(ctx, institutionID, teacherID, classroomID, groupID)
	if err != nil {
		return nil, nil, err
	}

	conflicts, err := conflict.Check(ctx, s.repo, conflict.Candidate{
		CourseID:    courseID,
		GroupID:     groupID,
		TeacherID:   teacherID,
		ClassroomID: classroomID,
		Day:         day,
		StartTime:   req.StartTime,
		EndTime:     endTime,
	}, nil, entities, s.caps())
	if err != nil {
		return nil, nil, utils.ErrInternalServer.Wrap(err)
	}
	if len(conflicts) > 0 {
		return nil, conflicts.Strings(), utils.ErrSchedulingConflict
	}

	entry := &models.TimetableEntry{
		InstitutionID:  institutionID,
		AcademicYearID: academicYearID,
		CourseID:       courseID,
		StudentGroupID: groupID,
		TeacherID:      teacherID,
		ClassroomID:    classroomID,
		DayOfWeek:      day,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		Duration:       req.Duration,
		Semester:       req.Semester,
		AcademicYear:   req.AcademicYear,
		Notes:          req.Notes,
		Status:         models.TimetableStatusScheduled,
	}

	if err := s.repo.InsertMany(ctx, []models.TimetableEntry{*entry}); err != nil {
		return nil, nil, utils.ErrInternalServer.Wrap(err)
	}

	return toEntryResponse(entry), nil, nil
}

// GetAll lists entries matching the given query.
func (s *TimetableService) GetAll(ctx context.Context, institutionID uuid.UUID, query repository.TimetableQuery) ([]response.TimetableEntryResponse, error) {
	entries, err := s.repo.FindTimetableEntries(ctx, institutionID, query)
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}
	out := make([]response.TimetableEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toEntryResponse(&entries[i]))
	}
	return out, nil
}

// GetByID fetches a single entry scoped to the institution.
func (s *TimetableService) GetByID(ctx context.Context, id, institutionID uuid.UUID) (*response.TimetableEntryResponse, error) {
	entry, err := s.repo.FindEntryByID(ctx, id, institutionID)
	if err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// Update applies the supplied fields to an existing entry, re-checking the
// conflict kernel before persisting.
func (s *TimetableService) Update(ctx context.Context, id, institutionID uuid.UUID, req *request.UpdateTimetableEntryRequest) (*response.TimetableEntryResponse, []string, error) {
	entry, err := s.repo.FindEntryByID(ctx, id, institutionID)
	if err != nil {
		return nil, nil, err
	}

	if req.ClassroomID != "" {
		classroomID, err := uuid.Parse(req.ClassroomID)
		if err != nil {
			return nil, nil, utils.ErrInvalidUUID
		}
		entry.ClassroomID = classroomID
	}
	if req.DayOfWeek != "" {
		entry.DayOfWeek = models.DayOfWeek(req.DayOfWeek)
	}
	if req.StartTime != "" {
		entry.StartTime = req.StartTime
	}
	if req.Duration > 0 {
		entry.Duration = req.Duration
	}
	if req.StartTime != "" || req.Duration > 0 {
		entry.EndTime = timeutil.EndOf(entry.StartTime, entry.Duration)
	}
	if req.Notes != "" {
		entry.Notes = req.Notes
	}
	if req.Status != "" {
		entry.Status = req.Status
	}

	entities, err := s.resolveEntities(ctx, institutionID, entry.TeacherID, entry.ClassroomID, entry.StudentGroupID)
	if err != nil {
		return nil, nil, err
	}

	excludeID := id
	conflicts, err := conflict.Check(ctx, s.repo, conflict.Candidate{
		CourseID:       entry.CourseID,
		GroupID:        entry.StudentGroupID,
		TeacherID:      entry.TeacherID,
		ClassroomID:    entry.ClassroomID,
		Day:            entry.DayOfWeek,
		StartTime:      entry.StartTime,
		EndTime:        entry.EndTime,
		ExcludeEntryID: &excludeID,
	}, nil, entities, s.caps())
	if err != nil {
		return nil, nil, utils.ErrInternalServer.Wrap(err)
	}
	if len(conflicts) > 0 {
		return nil, conflicts.Strings(), utils.ErrSchedulingConflict
	}

	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, nil, utils.ErrInternalServer.Wrap(err)
	}

	return toEntryResponse(entry), nil, nil
}

// Delete removes an entry scoped to the institution.
func (s *TimetableService) Delete(ctx context.Context, id, institutionID uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id, institutionID)
}

// generationInput loads the entity snapshot every generator needs.
func (s *TimetableService) generationInput(ctx context.Context, institutionID uuid.UUID, req request.GenerateTimetableRequest) (greedy.Input, error) {
	courses, err := s.repo.FindCourses(ctx, institutionID, req.Semester, req.AcademicYear, req.Department)
	if err != nil {
		return greedy.Input{}, utils.ErrInternalServer.Wrap(err)
	}
	classrooms, err := s.repo.FindClassrooms(ctx, institutionID)
	if err != nil {
		return greedy.Input{}, utils.ErrInternalServer.Wrap(err)
	}
	groups, err := s.repo.FindStudentGroups(ctx, institutionID, req.Semester, req.Department)
	if err != nil {
		return greedy.Input{}, utils.ErrInternalServer.Wrap(err)
	}
	faculty, err := s.repo.FindFaculty(ctx, institutionID, req.Department)
	if err != nil {
		return greedy.Input{}, utils.ErrInternalServer.Wrap(err)
	}

	groupMap := make(map[uuid.UUID]models.StudentGroup, len(groups))
	for _, g := range groups {
		groupMap[g.ID] = g
	}
	teacherMap := make(map[uuid.UUID]models.Teacher, len(faculty))
	for _, t := range faculty {
		teacherMap[t.ID] = t
	}

	return greedy.Input{
		Courses:       courses,
		Classrooms:    classrooms,
		StudentGroups: groupMap,
		Teachers:      teacherMap,
	}, nil
}

// GenerateGreedy runs the first-fit generator over the current institution's
// entities, without persisting the result.
func (s *TimetableService) GenerateGreedy(ctx context.Context, institutionID uuid.UUID, req request.GenerateTimetableRequest) (*response.GenerateResponse, error) {
	start := time.Now()
	input, err := s.generationInput(ctx, institutionID, req)
	if err != nil {
		return nil, err
	}

	slotStart, slotEnd, slotStep := s.resolveSlots(req)
	result, err := greedy.Generate(ctx, s.repo, input, greedy.Params{
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Department:   req.Department,
		SlotStart:    slotStart,
		SlotEnd:      slotEnd,
		SlotStep:     slotStep,
		Caps:         s.caps(),
		Debug:        req.Debug || s.cfg.Debug,
	})
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	resp := &response.GenerateResponse{
		Algorithm:        "greedy",
		Schedule:         toEntryResponses(result.Schedule),
		TotalSlots:       len(result.Schedule),
		UnscheduledCount: len(result.Unscheduled),
	}
	for _, u := range result.Unscheduled {
		resp.Unscheduled = append(resp.Unscheduled, response.UnscheduledSessionResponse{
			CourseID: u.CourseID, GroupID: u.GroupID, Session: u.Session, Conflicts: u.Conflicts,
		})
	}
	metrics.ObserveGeneration("greedy", start, len(result.Unscheduled))
	return resp, nil
}

// GenerateGraphColoring runs the Welsh-Powell/DSATUR generator.
func (s *TimetableService) GenerateGraphColoring(ctx context.Context, institutionID uuid.UUID, req request.GenerateTimetableRequest, academicYearID uuid.UUID) (*response.GenerateResponse, error) {
	start := time.Now()
	input, err := s.generationInput(ctx, institutionID, req)
	if err != nil {
		return nil, err
	}

	slotStart, slotEnd, slotStep := s.resolveSlots(req)
	graph := coloring.BuildGraph(input.Courses)
	cs, err := coloring.BuildColorSpace(slotStart, slotEnd, slotStep)
	if err != nil {
		return nil, utils.ErrInvalidSlotWindow.Wrap(err)
	}

	algorithm := coloring.WelshPowell
	name := "welsh-powell"
	if req.Algorithm == string(coloring.DSATUR) {
		algorithm = coloring.DSATUR
		name = "dsatur"
	}

	result, err := coloring.Color(ctx, graph, input.Classrooms, cs, algorithm, slotEnd, coloring.CourseMeta{
		Semester:       req.Semester,
		AcademicYear:   req.AcademicYear,
		AcademicYearID: academicYearID,
		InstitutionID:  institutionID,
	})
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	metrics.ObserveGeneration(name, start, result.Unscheduled)
	return &response.GenerateResponse{
		Algorithm:        name,
		Schedule:         toEntryResponses(result.Schedule),
		TotalSlots:       result.TotalSlots,
		UnscheduledCount: result.Unscheduled,
		TotalNodes:       result.TotalNodes,
		TotalEdges:       result.TotalEdges,
		ColorsUsed:       result.ColorsUsed,
	}, nil
}

// GenerateGenetic runs the genetic optimizer.
func (s *TimetableService) GenerateGenetic(ctx context.Context, institutionID uuid.UUID, req request.GenerateTimetableRequest, academicYearID uuid.UUID) (*response.GenerateResponse, error) {
	start := time.Now()
	input, err := s.generationInput(ctx, institutionID, req)
	if err != nil {
		return nil, err
	}

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

	slotStart, slotEnd, slotStep := s.resolveSlots(req)
	result, err := genetic.Run(ctx, sessions, input.Classrooms, genetic.Params{
		PopulationSize: req.PopulationSize,
		MaxGenerations: req.MaxGenerations,
		MutationRate:   req.MutationRate,
		CrossoverRate:  req.CrossoverRate,
		SlotStart:      slotStart,
		SlotEnd:        slotEnd,
		SlotStep:       slotStep,
		Caps:           s.caps(),
		Rand:           rand.New(rand.NewSource(1)),
	})
	if err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	var schedule []models.TimetableEntry
	for _, gene := range result.Schedule {
		if gene.Unschedulable {
			continue
		}
		schedule = append(schedule, models.TimetableEntry{
			CourseID: gene.CourseID, StudentGroupID: gene.GroupID, TeacherID: gene.TeacherID,
			ClassroomID: gene.ClassroomID, DayOfWeek: gene.Day, StartTime: gene.StartTime, EndTime: gene.EndTime,
			Duration: gene.Duration, Semester: req.Semester, AcademicYear: req.AcademicYear,
			AcademicYearID: academicYearID, InstitutionID: institutionID,
			Status: models.TimetableStatusScheduled,
		})
	}

	metrics.ObserveGeneration("genetic", start, len(result.Schedule)-len(schedule))
	return &response.GenerateResponse{
		Algorithm:        "genetic",
		Schedule:         toEntryResponses(schedule),
		TotalSlots:       len(schedule),
		UnscheduledCount: len(result.Schedule) - len(schedule),
		FitnessScore:     result.Fitness.Score,
		Generations:      result.Generations,
		PopulationSize:   result.PopulationSize,
	}, nil
}

// Compare runs DSATUR, Welsh-Powell, and the genetic optimizer over the
// same entity snapshot and returns each one's normalized outcome.
func (s *TimetableService) Compare(ctx context.Context, institutionID uuid.UUID, req request.GenerateTimetableRequest, academicYearID uuid.UUID) (*response.CompareResponse, error) {
	coreInput, err := s.generationInput(ctx, institutionID, req)
	if err != nil {
		return nil, err
	}

	slotStart, slotEnd, slotStep := s.resolveSlots(req)
	outcomes := compare.Run(ctx, compare.Input{
		Courses:       coreInput.Courses,
		Classrooms:    coreInput.Classrooms,
		StudentGroups: coreInput.StudentGroups,
		Teachers:      coreInput.Teachers,
	}, compare.Params{
		Semester:              req.Semester,
		AcademicYear:          req.AcademicYear,
		AcademicYearID:        academicYearID,
		InstitutionID:         institutionID,
		SlotStart:             slotStart,
		SlotEnd:               slotEnd,
		SlotStep:              slotStep,
		Caps:                  s.caps(),
		GeneticPopulationSize: req.PopulationSize,
		GeneticMaxGenerations: req.MaxGenerations,
	})

	resp := &response.CompareResponse{}
	for _, o := range outcomes {
		entry := response.CompareOutcomeResponse{
			Algorithm:      string(o.Algorithm),
			TotalSlots:     o.TotalSlots,
			Unscheduled:    o.Unscheduled,
			SuccessRate:    o.SuccessRate,
			HardViolations: o.HardViolations,
			SoftViolations: o.SoftViolations,
			FitnessScore:   o.FitnessScore,
		}
		if o.Err != nil {
			entry.Error = o.Err.Error()
		}
		metrics.UnscheduledSessions.WithLabelValues(string(o.Algorithm)).Set(float64(o.Unscheduled))
		resp.Outcomes = append(resp.Outcomes, entry)
	}
	return resp, nil
}

// GenerateSave persists a client-resubmitted, previously generated schedule.
func (s *TimetableService) GenerateSave(ctx context.Context, institutionID uuid.UUID, req *request.SaveGeneratedTimetableRequest) ([]response.TimetableEntryResponse, error) {
	entries := make([]models.TimetableEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		academicYearID, err := uuid.Parse(e.AcademicYearID)
		if err != nil {
			return nil, utils.ErrInvalidUUID
		}
		courseID, err := uuid.Parse(e.CourseID)
		if err != nil {
			return nil, utils.ErrInvalidUUID
		}
		groupID, err := uuid.Parse(e.StudentGroupID)
		if err != nil {
			return nil, utils.ErrInvalidUUID
		}
		teacherID, err := uuid.Parse(e.TeacherID)
		if err != nil {
			return nil, utils.ErrInvalidUUID
		}
		classroomID, err := uuid.Parse(e.ClassroomID)
		if err != nil {
			return nil, utils.ErrInvalidUUID
		}

		entries = append(entries, models.TimetableEntry{
			InstitutionID:  institutionID,
			AcademicYearID: academicYearID,
			CourseID:       courseID,
			StudentGroupID: groupID,
			TeacherID:      teacherID,
			ClassroomID:    classroomID,
			DayOfWeek:      models.DayOfWeek(e.DayOfWeek),
			StartTime:      e.StartTime,
			EndTime:        timeutil.EndOf(e.StartTime, e.Duration),
			Duration:       e.Duration,
			Semester:       e.Semester,
			AcademicYear:   e.AcademicYear,
			Notes:          e.Notes,
			Status:         models.TimetableStatusScheduled,
		})
	}

	if err := s.repo.InsertMany(ctx, entries); err != nil {
		return nil, utils.ErrInternalServer.Wrap(err)
	}

	return toEntryResponses(entries), nil
}

func (s *TimetableService) resolveSlots(req request.GenerateTimetableRequest) (string, string, int) {
	start, end, step := s.slotWindow()
	if req.SlotStart != "" {
		start = req.SlotStart
	}
	if req.SlotEnd != "" {
		end = req.SlotEnd
	}
	if req.SlotStep > 0 {
		step = req.SlotStep
	}
	return start, end, step
}

func toEntryResponse(e *models.TimetableEntry) *response.TimetableEntryResponse {
	return &response.TimetableEntryResponse{
		ID:             e.ID,
		AcademicYearID: e.AcademicYearID,
		CourseID:       e.CourseID,
		StudentGroupID: e.StudentGroupID,
		TeacherID:      e.TeacherID,
		ClassroomID:    e.ClassroomID,
		DayOfWeek:      string(e.DayOfWeek),
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Duration:       e.Duration,
		Semester:       e.Semester,
		AcademicYear:   e.AcademicYear,
		Notes:          e.Notes,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toEntryResponses(entries []models.TimetableEntry) []response.TimetableEntryResponse {
	out := make([]response.TimetableEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toEntryResponse(&entries[i]))
	}
	return out
}
