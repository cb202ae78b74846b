package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateUser covers the unique indexes on email and pseudo.
	ErrDuplicateUser = errors.New("this email or pseudo is already taken")
	// ErrRoomNotFound is raised when a booking references a missing room.
	ErrRoomNotFound = errors.New("room not found")
	// ErrInvalidPassword is raised when a password cannot be hashed, for
	// example when it exceeds bcrypt's 72-byte limit.
	ErrInvalidPassword = errors.New("invalid password")
)

// isDuplicateKey matches unique-constraint violations across drivers
// without depending on driver-specific error types.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
