package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается и для отсутствующего, и для неоплаченного
	// признания: снаружи эти случаи неразличимы намеренно.
	ErrNotFound = errors.New("proposal not found")

	// ErrInvalidState возвращается при попытке принять неопубликованное признание.
	ErrInvalidState = errors.New("proposal is not published")

	// ErrPaymentVerification возвращается при несовпадении подписи оплаты.
	ErrPaymentVerification = errors.New("invalid payment signature")
)

// ValidationError описывает некорректное поле входного запроса.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "must not be empty"}
}
