package services

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"gorm.io/gorm"
)

// ForAvailability restricts a listings query to the given availability scope.
func ForAvailability(a models.Availability) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch a {
		case models.AvailableOnly:
			return db.Where("is_available = ?", true)
		case models.AnyAvailability:
			return db
		default:
			db.AddError(fmt.Errorf("unknown availability scope %d", a))
			return db
		}
	}
}

func ForOwner(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// NewestFirst orders by creation time; ids break ties between rows
// created within the same clock tick.
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
