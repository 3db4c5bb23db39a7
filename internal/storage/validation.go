package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/cattree/internal/category"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTree ensures a tree can be saved.
func validateTree(root *category.Category) error {
	if root == nil {
		return fmt.Errorf("%w: root", ErrNilParameter)
	}
	return nil
}
