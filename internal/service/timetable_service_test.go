package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-core/internal/config"
	"campus-core/internal/dto/request"
	"campus-core/internal/models"
	"campus-core/internal/repository"
	"campus-core/internal/utils"
)

func newTestTimetableService(repo *repository.MemoryTimetableRepository) *TimetableService {
	return NewTimetableService(repo, config.SchedulingConfig{
		SlotStart: "09:00", SlotEnd: "17:00", SlotStep: 60,
	})
}

func TestTimetableServiceCreate(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)
	institutionID := uuid.New()

	teacherID, classroomID, groupID := uuid.New(), uuid.New(), uuid.New()
	repo.Teachers = []models.Teacher{{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: teacherID}, InstitutionID: institutionID}, IsActive: true}}
	repo.Classrooms = []models.Classroom{{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: classroomID}, InstitutionID: institutionID}, Name: "Room A", Capacity: 40, IsActive: true}}
	repo.StudentGroups = []models.StudentGroup{{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: groupID}, InstitutionID: institutionID}, Name: "CS-A", Size: 20}}

	req := &request.CreateTimetableEntryRequest{
		AcademicYearID: uuid.New().String(),
		CourseID:       uuid.New().String(),
		StudentGroupID: groupID.String(),
		TeacherID:      teacherID.String(),
		ClassroomID:    classroomID.String(),
		DayOfWeek:      "MONDAY",
		StartTime:      "09:00",
		Duration:       60,
		Semester:       "1",
		AcademicYear:   "2026",
	}

	entry, conflicts, err := svc.Create(context.Background(), institutionID, req)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, "10:00", entry.EndTime)
	assert.Equal(t, models.TimetableStatusScheduled, entry.Status)
	assert.Len(t, repo.Entries, 1)
}

func TestTimetableServiceCreateRejectsDuplicateClassroom(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)
	institutionID := uuid.New()
	classroomID := uuid.New()
	teacherID, groupID := uuid.New(), uuid.New()
	otherTeacherID, otherGroupID := uuid.New(), uuid.New()

	repo.Classrooms = []models.Classroom{{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: classroomID}, InstitutionID: institutionID}, Name: "Room A", Capacity: 40, IsActive: true}}
	repo.Teachers = []models.Teacher{
		{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: teacherID}, InstitutionID: institutionID}, IsActive: true},
		{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: otherTeacherID}, InstitutionID: institutionID}, IsActive: true},
	}
	repo.StudentGroups = []models.StudentGroup{
		{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: groupID}, InstitutionID: institutionID}, Name: "CS-A", Size: 20},
		{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: otherGroupID}, InstitutionID: institutionID}, Name: "CS-B", Size: 20},
	}

	base := &request.CreateTimetableEntryRequest{
		AcademicYearID: uuid.New().String(),
		CourseID:       uuid.New().String(),
		StudentGroupID: groupID.String(),
		TeacherID:      teacherID.String(),
		ClassroomID:    classroomID.String(),
		DayOfWeek:      "MONDAY",
		StartTime:      "09:00",
		Duration:       60,
	}
	_, _, err := svc.Create(context.Background(), institutionID, base)
	require.NoError(t, err)

	overlapping := *base
	overlapping.CourseID = uuid.New().String()
	overlapping.StudentGroupID = otherGroupID.String()
	overlapping.TeacherID = otherTeacherID.String()

	_, conflicts, err := svc.Create(context.Background(), institutionID, &overlapping)
	assert.ErrorIs(t, err, utils.ErrSchedulingConflict)
	assert.NotEmpty(t, conflicts)
	assert.Len(t, repo.Entries, 1)
}

func TestTimetableServiceGetAllScopesByInstitution(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)
	institutionA, institutionB := uuid.New(), uuid.New()

	repo.Entries = []models.TimetableEntry{
		{BaseModel: models.BaseModel{ID: uuid.New()}, InstitutionID: institutionA, DayOfWeek: models.Monday},
		{BaseModel: models.BaseModel{ID: uuid.New()}, InstitutionID: institutionB, DayOfWeek: models.Monday},
	}

	out, err := svc.GetAll(context.Background(), institutionA, repository.TimetableQuery{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestTimetableServiceUpdateNotFound(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)

	_, _, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &request.UpdateTimetableEntryRequest{Notes: "x"})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestTimetableServiceUpdateChangesSlotAndRecomputesEndTime(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)
	institutionID := uuid.New()
	entryID := uuid.New()
	teacherID, classroomID, groupID := uuid.New(), uuid.New(), uuid.New()

	repo.Teachers = []models.Teacher{{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: teacherID}, InstitutionID: institutionID}, IsActive: true}}
	repo.Classrooms = []models.Classroom{{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: classroomID}, InstitutionID: institutionID}, Name: "Room A", Capacity: 40, IsActive: true}}
	repo.StudentGroups = []models.StudentGroup{{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: groupID}, InstitutionID: institutionID}, Name: "CS-A", Size: 20}}

	repo.Entries = []models.TimetableEntry{{
		BaseModel:      models.BaseModel{ID: entryID},
		InstitutionID:  institutionID,
		TeacherID:      teacherID,
		ClassroomID:    classroomID,
		StudentGroupID: groupID,
		DayOfWeek:      models.Monday,
		StartTime:      "09:00",
		EndTime:        "10:00",
		Duration:       60,
		Status:         models.TimetableStatusScheduled,
	}}

	updated, conflicts, err := svc.Update(context.Background(), entryID, institutionID, &request.UpdateTimetableEntryRequest{
		StartTime: "11:00",
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, "11:00", updated.StartTime)
	assert.Equal(t, "12:00", updated.EndTime)
}

func TestTimetableServiceDelete(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)
	institutionID := uuid.New()
	entryID := uuid.New()
	repo.Entries = []models.TimetableEntry{{BaseModel: models.BaseModel{ID: entryID}, InstitutionID: institutionID}}

	require.NoError(t, svc.Delete(context.Background(), entryID, institutionID))
	assert.Empty(t, repo.Entries)
}

func TestTimetableServiceGenerateGreedyProducesSchedule(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)
	institutionID := uuid.New()

	teacherID := uuid.New()
	groupID := uuid.New()
	group := models.StudentGroup{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: groupID}, InstitutionID: institutionID}, Name: "CS-A", Size: 20}
	classroom := models.Classroom{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}, InstitutionID: institutionID}, Name: "Room A", Capacity: 40, IsActive: true}
	course := models.Course{
		TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}, InstitutionID: institutionID},
		Name:            "Algorithms", Duration: 60, Frequency: 1, TeacherID: teacherID, Semester: "1", IsActive: true,
		StudentGroups: []models.StudentGroup{group},
	}
	teacher := models.Teacher{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: teacherID}, InstitutionID: institutionID}, IsActive: true}

	repo.Courses = []models.Course{course}
	repo.Classrooms = []models.Classroom{classroom}
	repo.StudentGroups = []models.StudentGroup{group}
	repo.Teachers = []models.Teacher{teacher}

	resp, err := svc.GenerateGreedy(context.Background(), institutionID, request.GenerateTimetableRequest{Semester: "1"})
	require.NoError(t, err)
	assert.Equal(t, "greedy", resp.Algorithm)
	assert.Equal(t, 1, resp.TotalSlots)
	assert.Empty(t, resp.Unscheduled)
}

func TestTimetableServiceCompareRunsEveryAlgorithm(t *testing.T) {
	repo := repository.NewMemoryTimetableRepository()
	svc := newTestTimetableService(repo)
	institutionID := uuid.New()

	teacherID := uuid.New()
	group := models.StudentGroup{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}, InstitutionID: institutionID}, Name: "CS-A", Size: 20}
	classroom := models.Classroom{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}, InstitutionID: institutionID}, Capacity: 40, IsActive: true}
	course := models.Course{
		TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: uuid.New()}, InstitutionID: institutionID},
		Duration:        60, Frequency: 1, TeacherID: teacherID, Semester: "1", IsActive: true,
		StudentGroups: []models.StudentGroup{group},
	}
	teacher := models.Teacher{TenantBaseModel: models.TenantBaseModel{BaseModel: models.BaseModel{ID: teacherID}, InstitutionID: institutionID}, IsActive: true}

	repo.Courses = []models.Course{course}
	repo.Classrooms = []models.Classroom{classroom}
	repo.StudentGroups = []models.StudentGroup{group}
	repo.Teachers = []models.Teacher{teacher}

	resp, err := svc.Compare(context.Background(), institutionID, request.GenerateTimetableRequest{
		Semester: "1", PopulationSize: 10, MaxGenerations: 5,
	}, uuid.New())
	require.NoError(t, err)
	assert.Len(t, resp.Outcomes, 3)
}
