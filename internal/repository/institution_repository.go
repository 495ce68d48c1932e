package repository

import (
	"errors"

	"campus-core/internal/models"
	"campus-core/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstitutionRepository handles database operations for institutions.
// Institutions are not part of the scheduling domain; they exist so every
// scheduling entity (course, classroom, student group, teacher, timetable
// entry) can be scoped to a single school, matching the tenant-scoping
// convention the rest of this codebase uses.
type InstitutionRepository struct {
	db *gorm.DB
}

// NewInstitutionRepository creates a new institution repository
func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

// Create creates a new institution
func (r *InstitutionRepository) Create(institution *models.Institution) error {
	return r.db.Create(institution).Error
}

// FindByID finds an institution by ID
func (r *InstitutionRepository) FindByID(id uuid.UUID) (*models.Institution, error) {
	var institution models.Institution
	if err := r.db.First(&institution, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrInstitutionNotFound
		}
		return nil, err
	}
	return &institution, nil
}

// FindByCode finds an institution by code
func (r *InstitutionRepository) FindByCode(code string) (*models.Institution, error) {
	var institution models.Institution
	if err := r.db.First(&institution, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrInstitutionNotFound
		}
		return nil, err
	}
	return &institution, nil
}

// CodeExists checks if a code already exists
func (r *InstitutionRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Institution{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
