package core

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a malformed or out-of-range user supplied value.
	ErrValidation = errors.New("invalid value")
	// ErrInvalidDate marks a day/month/year combination that is not a real date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrEmptySet is returned when an average or percentage is requested over no data.
	ErrEmptySet = errors.New("no transactions in selection")
	// ErrCategoryMismatch is returned when two per-category series do not cover
	// the same categories.
	ErrCategoryMismatch = errors.New("category sets do not match")
	ErrStorageWrite     = errors.New("storage write failed")
	ErrStorageRead      = errors.New("storage read failed")
)

var (
	ErrInvalidAmount = fmt.Errorf("%w: amount", ErrValidation)
	ErrEmptyCategory = fmt.Errorf("%w: empty category", ErrValidation)
)
