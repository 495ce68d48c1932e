package repository

import (
	"context"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/conflict"
	"campus-core/internal/utils"

	"github.com/google/uuid"
)

// MemoryTimetableRepository is an in-memory Repository fake used by service
// tests and anywhere a generator needs a Repository without a database.
type MemoryTimetableRepository struct {
	Courses       []models.Course
	Classrooms    []models.Classroom
	StudentGroups []models.StudentGroup
	Teachers      []models.Teacher
	Entries       []models.TimetableEntry
}

// NewMemoryTimetableRepository returns an empty in-memory repository.
func NewMemoryTimetableRepository() *MemoryTimetableRepository {
	return &MemoryTimetableRepository{}
}

func (m *MemoryTimetableRepository) FindTimetable(_ context.Context, day models.DayOfWeek, courseID, groupID, teacherID, classroomID uuid.UUID, excludeEntryID *uuid.UUID) ([]conflict.Entry, error) {
	var out []conflict.Entry
	for _, e := range m.Entries {
		if e.DayOfWeek != day || e.Status != models.TimetableStatusScheduled {
			continue
		}
		if excludeEntryID != nil && e.ID == *excludeEntryID {
			continue
		}
		if e.CourseID != courseID && e.StudentGroupID != groupID && e.TeacherID != teacherID && e.ClassroomID != classroomID {
			continue
		}
		out = append(out, conflict.Entry{
			ID: e.ID, CourseID: e.CourseID, GroupID: e.StudentGroupID, TeacherID: e.TeacherID,
			ClassroomID: e.ClassroomID, Day: e.DayOfWeek, StartTime: e.StartTime, EndTime: e.EndTime,
		})
	}
	return out, nil
}

func (m *MemoryTimetableRepository) FindTimetableEntries(_ context.Context, institutionID uuid.UUID, filter TimetableQuery) ([]models.TimetableEntry, error) {
	var out []models.TimetableEntry
	for _, e := range m.Entries {
		if e.InstitutionID != institutionID {
			continue
		}
		if filter.TeacherID != nil && e.TeacherID != *filter.TeacherID {
			continue
		}
		if filter.StudentGroupID != nil && e.StudentGroupID != *filter.StudentGroupID {
			continue
		}
		if filter.CourseID != nil && e.CourseID != *filter.CourseID {
			continue
		}
		if filter.Day != "" && e.DayOfWeek != filter.Day {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *MemoryTimetableRepository) FindCourses(context.Context, uuid.UUID, string, string, string) ([]models.Course, error) {
	return m.Courses, nil
}

func (m *MemoryTimetableRepository) FindClassrooms(context.Context, uuid.UUID) ([]models.Classroom, error) {
	return m.Classrooms, nil
}

func (m *MemoryTimetableRepository) FindStudentGroups(context.Context, uuid.UUID, string, string) ([]models.StudentGroup, error) {
	return m.StudentGroups, nil
}

func (m *MemoryTimetableRepository) FindFaculty(context.Context, uuid.UUID, string) ([]models.Teacher, error) {
	return m.Teachers, nil
}

func (m *MemoryTimetableRepository) FindTeacherByID(_ context.Context, id, institutionID uuid.UUID) (*models.Teacher, error) {
	for i := range m.Teachers {
		if m.Teachers[i].ID == id && m.Teachers[i].InstitutionID == institutionID {
			return &m.Teachers[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *MemoryTimetableRepository) FindClassroomByID(_ context.Context, id, institutionID uuid.UUID) (*models.Classroom, error) {
	for i := range m.Classrooms {
		if m.Classrooms[i].ID == id && m.Classrooms[i].InstitutionID == institutionID {
			return &m.Classrooms[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *MemoryTimetableRepository) FindStudentGroupByID(_ context.Context, id, institutionID uuid.UUID) (*models.StudentGroup, error) {
	for i := range m.StudentGroups {
		if m.StudentGroups[i].ID == id && m.StudentGroups[i].InstitutionID == institutionID {
			return &m.StudentGroups[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *MemoryTimetableRepository) InsertMany(_ context.Context, entries []models.TimetableEntry) error {
	m.Entries = append(m.Entries, entries...)
	return nil
}

func (m *MemoryTimetableRepository) FindEntryByID(_ context.Context, id, institutionID uuid.UUID) (*models.TimetableEntry, error) {
	for i := range m.Entries {
		if m.Entries[i].ID == id && m.Entries[i].InstitutionID == institutionID {
			return &m.Entries[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *MemoryTimetableRepository) UpdateEntry(_ context.Context, entry *models.TimetableEntry) error {
	for i := range m.Entries {
		if m.Entries[i].ID == entry.ID {
			m.Entries[i] = *entry
			return nil
		}
	}
	return utils.ErrNotFound
}

func (m *MemoryTimetableRepository) DeleteEntry(_ context.Context, id, institutionID uuid.UUID) error {
	for i := range m.Entries {
		if m.Entries[i].ID == id && m.Entries[i].InstitutionID == institutionID {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}
