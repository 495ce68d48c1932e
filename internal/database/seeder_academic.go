package database

import (
	"time"

	"campus-core/internal/models"
	"campus-core/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedAcademicYears creates the current academic year for every institution.
func (s *Seeder) SeedAcademicYears() error {
	institutions := []string{"DCC", "TIT"}
	now := time.Now()

	for _, code := range institutions {
		var inst models.Institution
		if err := s.db.Where("code = ?", code).First(&inst).Error; err != nil {
			logger.Error("institution not found for seeding academic year", zap.String("code", code))
			continue
		}

		var count int64
		s.db.Model(&models.AcademicYear{}).Where("institution_id = ? AND is_current = ?", inst.ID, true).Count(&count)
		if count == 0 {
			year := &models.AcademicYear{
				BaseModel:     models.BaseModel{ID: uuid.New()},
				InstitutionID: inst.ID,
				Name:          "2026-2027",
				StartDate:     time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:       time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
				IsCurrent:     true,
			}
			if err := s.db.Create(year).Error; err != nil {
				return err
			}
			logger.Info("Academic year seeded", zap.String("institution", code))
		}
	}
	return nil
}

type classroomSeed struct {
	name     string
	capacity int
}

type studentGroupSeed struct {
	name string
	size int
}

type courseSeed struct {
	name      string
	duration  int
	frequency int
}

// SeedCourses creates default classrooms, student groups, and courses for
// each institution, assigning each course to one of the teachers seeded by
// SeedUsers and to every seeded student group.
func (s *Seeder) SeedCourses() error {
	institutions := []string{"DCC", "TIT"}

	classroomDefs := []classroomSeed{
		{"Room 101", 40}, {"Room 102", 30}, {"Lab A", 25},
	}
	groupDefs := []studentGroupSeed{
		{"Semester 1 - Section A", 35}, {"Semester 1 - Section B", 32},
	}
	courseDefs := []courseSeed{
		{"Data Structures", 60, 3}, {"Linear Algebra", 60, 2}, {"Physics I", 90, 2},
	}

	for _, code := range institutions {
		var inst models.Institution
		if err := s.db.Where("code = ?", code).First(&inst).Error; err != nil {
			continue
		}
		var year models.AcademicYear
		if err := s.db.Where("institution_id = ? AND is_current = ?", inst.ID, true).First(&year).Error; err != nil {
			logger.Error("no current academic year, skipping course seed", zap.String("institution", code))
			continue
		}

		s.seedClassrooms(inst.ID, classroomDefs)
		groupIDs := s.seedStudentGroups(inst.ID, groupDefs)

		var teachers []models.Teacher
		s.db.Where("institution_id = ?", inst.ID).Find(&teachers)
		if len(teachers) == 0 {
			logger.Error("no teachers available, skipping course seed", zap.String("institution", code))
			continue
		}

		var groups []models.StudentGroup
		if len(groupIDs) > 0 {
			s.db.Where("id IN ?", groupIDs).Find(&groups)
		}

		for i, def := range courseDefs {
			var count int64
			s.db.Model(&models.Course{}).Where("institution_id = ? AND name = ?", inst.ID, def.name).Count(&count)
			if count > 0 {
				continue
			}
			course := &models.Course{
				TenantBaseModel: models.TenantBaseModel{
					BaseModel:     models.BaseModel{ID: uuid.New()},
					InstitutionID: inst.ID,
				},
				Name:           def.name,
				Duration:       def.duration,
				Frequency:      def.frequency,
				TeacherID:      teachers[i%len(teachers)].ID,
				Semester:       "Fall",
				AcademicYearID: year.ID,
				IsActive:       true,
			}
			if err := s.db.Create(course).Error; err != nil {
				return err
			}
			if len(groups) > 0 {
				if err := s.db.Model(course).Association("StudentGroups").Append(groups); err != nil {
					return err
				}
			}
			logger.Info("Course seeded", zap.String("name", def.name), zap.String("institution", code))
		}
	}
	return nil
}

func (s *Seeder) seedClassrooms(institutionID uuid.UUID, defs []classroomSeed) []uuid.UUID {
	var ids []uuid.UUID
	for _, def := range defs {
		var classroom models.Classroom
		err := s.db.Where("institution_id = ? AND name = ?", institutionID, def.name).First(&classroom).Error
		if err != nil {
			classroom = models.Classroom{
				TenantBaseModel: models.TenantBaseModel{
					BaseModel:     models.BaseModel{ID: uuid.New()},
					InstitutionID: institutionID,
				},
				Name:     def.name,
				Capacity: def.capacity,
				IsActive: true,
			}
			s.db.Create(&classroom)
		}
		ids = append(ids, classroom.ID)
	}
	return ids
}

func (s *Seeder) seedStudentGroups(institutionID uuid.UUID, defs []studentGroupSeed) []uuid.UUID {
	var ids []uuid.UUID
	for _, def := range defs {
		var group models.StudentGroup
		err := s.db.Where("institution_id = ? AND name = ?", institutionID, def.name).First(&group).Error
		if err != nil {
			group = models.StudentGroup{
				TenantBaseModel: models.TenantBaseModel{
					BaseModel:     models.BaseModel{ID: uuid.New()},
					InstitutionID: institutionID,
				},
				Name:     def.name,
				Size:     def.size,
				Semester: "Fall",
				IsActive: true,
			}
			s.db.Create(&group)
		}
		ids = append(ids, group.ID)
	}
	return ids
}
