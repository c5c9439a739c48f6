package repo

import (
	"errors"

	"gorm.io/gorm"
)

// GormRepo is the storage layer. Uniqueness and foreign-key violations
// surface as the driver's errors, untranslated.
type GormRepo struct {
	DB *gorm.DB
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserHasRecords is returned when deleting a user that still owns a
	// farmer profile, orders or reviews. Only chat messages cascade.
	ErrUserHasRecords = errors.New("user still has dependent records")
)
