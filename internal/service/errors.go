package service

import (
	"errors"
	"fmt"

	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/pkg/validator"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrSessionActive        = errors.New("another editing session is already open")
	ErrNoSession            = errors.New("no matching editing session is open")
	ErrBusy                 = errors.New("a request for this product is already in progress")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
)

// Operation names the store call behind a PersistenceError.
type Operation string

const (
	OpLoad   Operation = "load"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// PersistenceError is returned when the product store rejects a call.
// The local cache and the editing session are left as they were.
type PersistenceError struct {
	Op  Operation
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s product: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MessageKey is the banner shown to the admin.
func (e *PersistenceError) MessageKey() string {
	switch e.Op {
	case OpCreate:
		return i18n.KeyErrAdd
	case OpUpdate:
		return i18n.KeyErrUpdate
	case OpDelete:
		return i18n.KeyErrDelete
	default:
		return i18n.KeyErrLoad
	}
}

// ValidationError lists every invalid field. It is always raised before
// any call to the store or the credential check.
type ValidationError struct {
	Fields []validator.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "Validation failed"
	}
	first := e.Fields[0]
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.Field, first.Tag)
}

// FieldMessageKey picks the i18n key explaining one failed rule.
func FieldMessageKey(fe validator.FieldError) string {
	switch fe.Tag {
	case "required":
		return i18n.KeyRequired
	case "url":
		return i18n.KeyURL
	case "email":
		return i18n.KeyEmail
	case "category":
		return i18n.KeyCategory
	case "min":
		switch fe.Field {
		case "price":
			return i18n.KeyPriceMin
		case "password":
			return i18n.KeyPasswordMin
		}
	}
	return i18n.KeyInvalidField
}
