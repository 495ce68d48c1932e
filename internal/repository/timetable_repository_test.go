package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campus-core/internal/models"
)

func newTimetableRepoMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gdb, mock, func() { sqlDB.Close() }
}

func TestGormTimetableRepositoryFindTimetable(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	courseID, groupID, teacherID, classroomID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	entryID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "institution_id", "academic_year_id", "course_id", "student_group_id",
		"teacher_id", "classroom_id", "day_of_week", "start_time", "end_time",
		"duration", "semester", "academic_year", "status", "created_at", "updated_at",
	}).AddRow(
		entryID, uuid.New(), uuid.New(), courseID, groupID,
		teacherID, classroomID, models.Monday, "09:00", "10:00",
		60, "1", "2026", models.TimetableStatusScheduled, time.Now(), time.Now(),
	)
	mock.ExpectQuery(`SELECT \* FROM "timetable_entries" WHERE`).WillReturnRows(rows)

	entries, err := repo.FindTimetable(context.Background(), models.Monday, courseID, groupID, teacherID, classroomID, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entryID, entries[0].ID)
	assert.Equal(t, teacherID, entries[0].TeacherID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTimetableRepositoryFindTimetableExcludesEntry(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	exclude := uuid.New()
	rows := sqlmock.NewRows([]string{"id"})
	mock.ExpectQuery(`SELECT \* FROM "timetable_entries" WHERE .*id != `).WillReturnRows(rows)

	entries, err := repo.FindTimetable(context.Background(), models.Tuesday, uuid.New(), uuid.New(), uuid.New(), uuid.New(), &exclude)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTimetableRepositoryFindClassrooms(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	institutionID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "institution_id", "name", "capacity", "is_active"}).
		AddRow(uuid.New(), institutionID, "Room A", 40, true).
		AddRow(uuid.New(), institutionID, "Room B", 60, true)
	mock.ExpectQuery(`SELECT \* FROM "classrooms" WHERE`).WillReturnRows(rows)

	classrooms, err := repo.FindClassrooms(context.Background(), institutionID)
	require.NoError(t, err)
	assert.Len(t, classrooms, 2)
	assert.Equal(t, "Room A", classrooms[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTimetableRepositoryFindStudentGroupsFiltersBySemester(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	institutionID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "institution_id", "name", "size", "semester", "is_active"}).
		AddRow(uuid.New(), institutionID, "CS-A", 30, "1", true)
	mock.ExpectQuery(`SELECT \* FROM "student_groups" WHERE .*semester = `).WillReturnRows(rows)

	groups, err := repo.FindStudentGroups(context.Background(), institutionID, "1", "")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "CS-A", groups[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTimetableRepositoryInsertMany(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	entries := []models.TimetableEntry{
		{
			InstitutionID:  uuid.New(),
			AcademicYearID: uuid.New(),
			CourseID:       uuid.New(),
			StudentGroupID: uuid.New(),
			TeacherID:      uuid.New(),
			ClassroomID:    uuid.New(),
			DayOfWeek:      models.Monday,
			StartTime:      "09:00",
			EndTime:        "10:00",
			Duration:       60,
			Status:         models.TimetableStatusScheduled,
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "timetable_entries"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := repo.InsertMany(context.Background(), entries)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTimetableRepositoryInsertManyEmpty(t *testing.T) {
	db, _, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	require.NoError(t, repo.InsertMany(context.Background(), nil))
}

func TestGormTimetableRepositoryDeleteEntry(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	id, institutionID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "timetable_entries" SET`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteEntry(context.Background(), id, institutionID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTimetableRepositoryFindEntryByIDNotFound(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "timetable_entries" WHERE`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindEntryByID(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
}
