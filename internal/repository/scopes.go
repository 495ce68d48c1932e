package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantScope filters queries by institution_id. The scheduling snapshot
// queries apply it to every course/classroom/group/faculty read so one
// institution's generation run never sees another's entities.
func TenantScope(institutionID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if institutionID == "" {
			return db
		}
		if _, err := uuid.Parse(institutionID); err != nil {
			return db
		}
		return db.Where("institution_id = ?", institutionID)
	}
}

// ActiveScope filters by is_active = true. Inactive entities stay out of
// every generator's input without being deleted.
func ActiveScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
