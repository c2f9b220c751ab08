package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrDuplicate       = errors.New("duplicate record")
	ErrAlreadyAssigned = errors.New("user already assigned to a group")
)

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint")
}

func translate(err error) error {
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}
