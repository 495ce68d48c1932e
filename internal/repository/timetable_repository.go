package repository

import (
	"context"
	"errors"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/conflict"
	"campus-core/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the contract the scheduling core consumes:
// snapshot reads of courses/classrooms/groups/faculty and
// the persisted-entry lookup used by the conflict kernel, plus the
// caller-driven bulk insert of a generated schedule. FindTimetable's
// signature matches conflict.Repository exactly, so any Repository
// implementation also satisfies it directly.
type Repository interface {
	FindTimetable(ctx context.Context, day models.DayOfWeek, courseID, groupID, teacherID, classroomID uuid.UUID, excludeEntryID *uuid.UUID) ([]conflict.Entry, error)
	FindTimetableEntries(ctx context.Context, institutionID uuid.UUID, filter TimetableQuery) ([]models.TimetableEntry, error)
	FindCourses(ctx context.Context, institutionID uuid.UUID, semester, academicYear, department string) ([]models.Course, error)
	FindClassrooms(ctx context.Context, institutionID uuid.UUID) ([]models.Classroom, error)
	FindStudentGroups(ctx context.Context, institutionID uuid.UUID, semester, department string) ([]models.StudentGroup, error)
	FindFaculty(ctx context.Context, institutionID uuid.UUID, department string) ([]models.Teacher, error)
	FindTeacherByID(ctx context.Context, id, institutionID uuid.UUID) (*models.Teacher, error)
	FindClassroomByID(ctx context.Context, id, institutionID uuid.UUID) (*models.Classroom, error)
	FindStudentGroupByID(ctx context.Context, id, institutionID uuid.UUID) (*models.StudentGroup, error)
	InsertMany(ctx context.Context, entries []models.TimetableEntry) error
	FindEntryByID(ctx context.Context, id, institutionID uuid.UUID) (*models.TimetableEntry, error)
	UpdateEntry(ctx context.Context, entry *models.TimetableEntry) error
	DeleteEntry(ctx context.Context, id, institutionID uuid.UUID) error
}

// TimetableQuery holds filter criteria for the GET /timetable listing.
type TimetableQuery struct {
	TeacherID      *uuid.UUID
	StudentGroupID *uuid.UUID
	CourseID       *uuid.UUID
	Day            models.DayOfWeek
	Semester       string
	AcademicYear   string
}

// GormTimetableRepository is the production Repository backed by GORM.
type GormTimetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository creates a new GORM-backed timetable repository.
func NewTimetableRepository(db *gorm.DB) *GormTimetableRepository {
	return &GormTimetableRepository{db: db}
}

// FindTimetable resolves persisted entries for the given day that match at
// least one of the four identifiers, excluding excludeEntryID if set, and
// returns them normalized as conflict.Entry.
func (r *GormTimetableRepository) FindTimetable(ctx context.Context, day models.DayOfWeek, courseID, groupID, teacherID, classroomID uuid.UUID, excludeEntryID *uuid.UUID) ([]conflict.Entry, error) {
	var rows []models.TimetableEntry
	query := r.db.WithContext(ctx).Where("day_of_week = ? AND status = ?", day, models.TimetableStatusScheduled).
		Where("(course_id = ? OR student_group_id = ? OR teacher_id = ? OR classroom_id = ?)", courseID, groupID, teacherID, classroomID)
	if excludeEntryID != nil {
		query = query.Where("id != ?", *excludeEntryID)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]conflict.Entry, len(rows))
	for i, row := range rows {
		entries[i] = conflict.Entry{
			ID:          row.ID,
			CourseID:    row.CourseID,
			GroupID:     row.StudentGroupID,
			TeacherID:   row.TeacherID,
			ClassroomID: row.ClassroomID,
			Day:         row.DayOfWeek,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
		}
	}
	return entries, nil
}

// FindTimetableEntries returns entries matching the given query, scoped to
// an institution, with course/group/teacher/classroom preloaded for
// rendering.
func (r *GormTimetableRepository) FindTimetableEntries(ctx context.Context, institutionID uuid.UUID, filter TimetableQuery) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	query := r.db.WithContext(ctx).Where("institution_id = ?", institutionID)
	if filter.TeacherID != nil {
		query = query.Where("teacher_id = ?", *filter.TeacherID)
	}
	if filter.StudentGroupID != nil {
		query = query.Where("student_group_id = ?", *filter.StudentGroupID)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.Day != "" {
		query = query.Where("day_of_week = ?", filter.Day)
	}
	if filter.Semester != "" {
		query = query.Where("semester = ?", filter.Semester)
	}
	if filter.AcademicYear != "" {
		query = query.Where("academic_year = ?", filter.AcademicYear)
	}
	err := query.Preload("Course").Preload("StudentGroup").Preload("Teacher").Preload("Classroom").
		Order("day_of_week ASC, start_time ASC").Find(&entries).Error
	return entries, err
}

// FindCourses loads active courses filtered by semester and department, with
// teacher and student groups expanded. The academicYear argument is not
// applied.
func (r *GormTimetableRepository) FindCourses(ctx context.Context, institutionID uuid.UUID, semester, academicYear, department string) ([]models.Course, error) {
	var courses []models.Course
	query := r.db.WithContext(ctx).Scopes(TenantScope(institutionID.String()), ActiveScope)
	if semester != "" {
		query = query.Where("semester = ?", semester)
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}
	err := query.Preload("Teacher").Preload("StudentGroups").Preload("AcademicYear").Find(&courses).Error
	return courses, err
}

// FindClassrooms loads all active classrooms for the institution.
func (r *GormTimetableRepository) FindClassrooms(ctx context.Context, institutionID uuid.UUID) ([]models.Classroom, error) {
	var classrooms []models.Classroom
	err := r.db.WithContext(ctx).Scopes(TenantScope(institutionID.String()), ActiveScope).Find(&classrooms).Error
	return classrooms, err
}

// FindStudentGroups loads active student groups for the given filter.
func (r *GormTimetableRepository) FindStudentGroups(ctx context.Context, institutionID uuid.UUID, semester, department string) ([]models.StudentGroup, error) {
	var groups []models.StudentGroup
	query := r.db.WithContext(ctx).Scopes(TenantScope(institutionID.String()), ActiveScope)
	if semester != "" {
		query = query.Where("semester = ?", semester)
	}
	if department != "" {
		query = query.Where("department = ?", department)
	}
	err := query.Find(&groups).Error
	return groups, err
}

// FindFaculty loads active teachers for the given department filter.
func (r *GormTimetableRepository) FindFaculty(ctx context.Context, institutionID uuid.UUID, department string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	query := r.db.WithContext(ctx).Scopes(TenantScope(institutionID.String()), ActiveScope)
	if department != "" {
		query = query.Where("department = ?", department)
	}
	err := query.Preload("User").Find(&teachers).Error
	return teachers, err
}

// FindTeacherByID finds a single teacher scoped to an institution.
func (r *GormTimetableRepository) FindTeacherByID(ctx context.Context, id, institutionID uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.WithContext(ctx).Preload("User").First(&teacher, "id = ? AND institution_id = ?", id, institutionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &teacher, nil
}

// FindClassroomByID finds a single classroom scoped to an institution.
func (r *GormTimetableRepository) FindClassroomByID(ctx context.Context, id, institutionID uuid.UUID) (*models.Classroom, error) {
	var classroom models.Classroom
	err := r.db.WithContext(ctx).First(&classroom, "id = ? AND institution_id = ?", id, institutionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &classroom, nil
}

// FindStudentGroupByID finds a single student group scoped to an institution.
func (r *GormTimetableRepository) FindStudentGroupByID(ctx context.Context, id, institutionID uuid.UUID) (*models.StudentGroup, error) {
	var group models.StudentGroup
	err := r.db.WithContext(ctx).First(&group, "id = ? AND institution_id = ?", id, institutionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// InsertMany performs a bulk insert without re-checking conflicts. Intended
// only for schedules the core just produced (generate/save).
func (r *GormTimetableRepository) InsertMany(ctx context.Context, entries []models.TimetableEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(entries, 100).Error
}

// FindEntryByID finds a single timetable entry scoped to an institution.
func (r *GormTimetableRepository) FindEntryByID(ctx context.Context, id, institutionID uuid.UUID) (*models.TimetableEntry, error) {
	var entry models.TimetableEntry
	err := r.db.WithContext(ctx).Preload("Course").Preload("StudentGroup").Preload("Teacher").Preload("Classroom").
		First(&entry, "id = ? AND institution_id = ?", id, institutionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry persists changes to an existing entry.
func (r *GormTimetableRepository) UpdateEntry(ctx context.Context, entry *models.TimetableEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// DeleteEntry soft-deletes a timetable entry scoped to an institution.
func (r *GormTimetableRepository) DeleteEntry(ctx context.Context, id, institutionID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("institution_id = ?", institutionID).Delete(&models.TimetableEntry{}, "id = ?", id).Error
}
