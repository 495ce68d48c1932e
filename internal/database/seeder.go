package database

import (
	"campus-core/internal/models"
	"campus-core/internal/utils"
	"campus-core/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions in dependency order: institutions, the
// super admin, academic years, then the scheduling entities (teachers,
// courses, classrooms, student groups) that reference them.
func (s *Seeder) SeedAll() error {
	logger.Info("Starting database seeding...")

	if err := s.SeedInstitutions(); err != nil {
		return err
	}
	if err := s.SeedSuperAdmin(); err != nil {
		return err
	}
	if err := s.SeedAcademicYears(); err != nil {
		return err
	}
	if err := s.SeedUsers(); err != nil {
		return err
	}
	if err := s.SeedCourses(); err != nil {
		return err
	}

	logger.Info("Database seeding completed successfully")
	return nil
}

// SeedInstitutions creates default institutions
func (s *Seeder) SeedInstitutions() error {
	institutions := []models.Institution{
		{
			BaseModel: models.BaseModel{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111")},
			Name:      "Dhaka City College",
			Code:      "DCC",
			Address:   "Dhanmondi, Dhaka",
			Phone:     "+88029674115",
			Email:     "info@dhakacitycollege.edu.bd",
			IsActive:  true,
		},
		{
			BaseModel: models.BaseModel{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222")},
			Name:      "Test Institute of Technology",
			Code:      "TIT",
			Address:   "Test Street, Test City",
			Phone:     "+1000000000",
			Email:     "info@testinstitute.edu",
			IsActive:  true,
		},
	}

	for _, inst := range institutions {
		var count int64
		s.db.Model(&models.Institution{}).Where("code = ?", inst.Code).Count(&count)
		if count == 0 {
			if err := s.db.Create(&inst).Error; err != nil {
				return err
			}
			logger.Info("Institution seeded", zap.String("name", inst.Name))
		}
	}
	return nil
}

// SeedSuperAdmin creates a default super admin user if not exists
func (s *Seeder) SeedSuperAdmin() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := utils.HashPassword("Admin@123")
	if err != nil {
		return err
	}

	superAdmin := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "superadmin@campus.local",
		PasswordHash: hashedPassword,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := s.db.Create(superAdmin).Error; err != nil {
		return err
	}

	profile := &models.UserProfile{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    superAdmin.ID,
		FirstName: "Super",
		LastName:  "Admin",
	}
	if err := s.db.Create(profile).Error; err != nil {
		return err
	}

	logger.Info("Super admin seeded")
	return nil
}
