package domain

import (
	"errors"
	"fmt"
)

// ErrTooManyExclusives is returned when an exclusive group outgrows the integer encoding.
var ErrTooManyExclusives = errors.New("too many toggles sharing exclusive tag")

// ErrInvalidProject is returned when a project fails structural validation.
var ErrInvalidProject = errors.New("invalid project")

// ErrArtifactNotFound is returned when an artifact cannot be found in the store.
var ErrArtifactNotFound = errors.New("artifact not found")

// ExclusiveOverflowError names the tag whose group exceeded MaxExclusiveGroupSize.
type ExclusiveOverflowError struct {
	Tag  string
	Size int
}

func (e *ExclusiveOverflowError) Error() string {
	return fmt.Sprintf("too many toggles sharing tag %s (%d); reduce below %d", e.Tag, e.Size, MaxExclusiveGroupSize)
}

func (e *ExclusiveOverflowError) Unwrap() error { return ErrTooManyExclusives }
