package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStaleWrite is returned when a conditional update finds the row changed since it was read.
var ErrStaleWrite = errors.New("record was modified by another request")

// IsDuplicate reports a unique constraint violation. Requires gorm.Config.TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// first runs q and returns nil, nil when no row matches.
func first[T any](q *gorm.DB) (*T, error) {
	var out T
	err := q.First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
