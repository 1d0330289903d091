package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailExists              = errors.New("email already registered")
	ErrManagerPrivilegeRequired = errors.New("manager privilege required")
)
