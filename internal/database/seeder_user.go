package database

import (
	"fmt"
	"time"

	"campus-core/internal/models"
	"campus-core/internal/utils"
	"campus-core/pkg/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// SeedUsers creates a default admin and a handful of teachers for every
// seeded institution.
func (s *Seeder) SeedUsers() error {
	institutions := []string{"DCC", "TIT"}

	for _, code := range institutions {
		var inst models.Institution
		if err := s.db.Where("code = ?", code).First(&inst).Error; err != nil {
			continue
		}

		if err := s.seedRoleUser(inst.ID, "Admin", "User", "admin@"+inst.Code+".edu", models.RoleAdmin); err != nil {
			return err
		}
		if err := s.seedTeachers(inst.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedRoleUser(institutionID uuid.UUID, firstName, lastName, email, role string) error {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, _ := utils.HashPassword("Pass@123")
	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	profile := &models.UserProfile{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		UserID:        user.ID,
		InstitutionID: &institutionID,
		FirstName:     firstName,
		LastName:      lastName,
	}
	if err := s.db.Create(profile).Error; err != nil {
		return err
	}
	logger.Info("User seeded", zap.String("email", email), zap.String("role", role))
	return nil
}

func (s *Seeder) seedTeachers(institutionID uuid.UUID) error {
	departments := []string{"Computer Science", "Mathematics", "Physics", "Computer Science", "Mathematics"}

	for i := 1; i <= len(departments); i++ {
		email := fmt.Sprintf("teacher%d@%s.edu", i, s.getInstCode(institutionID))
		if err := s.seedRoleUser(institutionID, "Teacher", fmt.Sprintf("%d", i), email, models.RoleTeacher); err != nil {
			return err
		}

		var user models.User
		s.db.Where("email = ?", email).First(&user)

		var count int64
		s.db.Model(&models.Teacher{}).Where("user_id = ?", user.ID).Count(&count)
		if count == 0 {
			joinDate := time.Now()
			teacher := &models.Teacher{
				TenantBaseModel: models.TenantBaseModel{
					BaseModel:     models.BaseModel{ID: uuid.New()},
					InstitutionID: institutionID,
				},
				UserID:         user.ID,
				JoiningDate:    &joinDate,
				Qualifications: pq.StringArray{"M.Sc", "B.Ed"},
				Department:     departments[i-1],
				IsActive:       true,
			}
			s.db.Create(teacher)
		}
	}
	return nil
}

func (s *Seeder) getInstCode(id uuid.UUID) string {
	var inst models.Institution
	s.db.First(&inst, id)
	return inst.Code
}
