package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// UniqueViolation reports whether err is a unique index violation and, when
// one of fields appears in the driver message, which field collided.
//
// Drivers phrase this differently:
//
//	sqlite:   UNIQUE constraint failed: users.email
//	postgres: duplicate key value violates unique constraint "idx_users_email"
//	mysql:    Duplicate entry 'a@b.c' for key 'users.idx_users_email'
func UniqueViolation(err error, fields ...string) (string, bool) {
	if err == nil {
		return "", false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique") && !strings.Contains(msg, "duplicate") {
		return "", false
	}
	for _, f := range fields {
		if strings.Contains(msg, "."+f) || strings.Contains(msg, "_"+f) {
			return f, true
		}
	}
	return "", true
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
