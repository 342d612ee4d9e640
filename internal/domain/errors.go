package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameExists   = errors.New("Username already exists")
	ErrEmailExists      = errors.New("Email already exists")
	ErrNoFieldsToUpdate = errors.New("No fields to update")

	// ErrStoreUnavailable 基础设施故障，不属于业务错误，原样上抛
	ErrStoreUnavailable = errors.New("store unavailable")
)

// NotFoundError 携带未命中的用户 ID，错误信息对客户端可见
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User with ID %d not found.", e.ID)
}

func NewNotFound(id int64) error { return &NotFoundError{ID: id} }
