package models

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateCode    = errors.New("employee code already exists")
	ErrUserNotFound     = errors.New("user not found")
)
