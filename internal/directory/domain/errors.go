package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("profile not found")
	ErrValidation = errors.New("please fill all fields")
)

// ValidationError lists the required draft fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": missing " + strings.Join(e.Missing, ", ")
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
