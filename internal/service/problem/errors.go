package problem

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidProblemID   = fmt.Errorf("%w: invalid problem id", ErrValidation)
	ErrInvalidOrderID     = fmt.Errorf("%w: invalid order id", ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: invalid description", ErrValidation)

	ErrProblemNotFound = errors.New("delivery problem not found")

	ErrReferenceNotFound = errors.New("reference not found")
	// ErrOrderNotFound заказ отсутствует или уже отменён.
	ErrOrderNotFound = fmt.Errorf("order: %w", ErrReferenceNotFound)
)
