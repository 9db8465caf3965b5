package order

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation error")
	ErrInvalidOrderID        = fmt.Errorf("%w: invalid order id", ErrValidation)
	ErrInvalidRecipientID    = fmt.Errorf("%w: invalid recipient id", ErrValidation)
	ErrInvalidDelivererID    = fmt.Errorf("%w: invalid deliverer id", ErrValidation)
	ErrInvalidSignatureID    = fmt.Errorf("%w: invalid signature id", ErrValidation)
	ErrInvalidProduct        = fmt.Errorf("%w: invalid product", ErrValidation)
	ErrInvalidDeliveryStatus = fmt.Errorf("%w: invalid delivery status", ErrValidation)
	ErrNoFieldsToUpdate      = fmt.Errorf("%w: no fields to update", ErrValidation)

	ErrOrderNotFound = errors.New("order not found")

	ErrReferenceNotFound = errors.New("reference not found")
	ErrCourierNotFound   = fmt.Errorf("deliverer: %w", ErrReferenceNotFound)
	ErrRecipientNotFound = fmt.Errorf("recipient: %w", ErrReferenceNotFound)
	ErrFileNotFound      = fmt.Errorf("file: %w", ErrReferenceNotFound)

	ErrInvalidState         = errors.New("operation is not allowed in current order state")
	ErrAlreadyCancelled     = errors.New("order already cancelled")
	ErrOutsideBusinessHours = errors.New("outside business hours")
	ErrDailyLimitExceeded   = errors.New("daily pickup limit exceeded")
)

// OutsideBusinessHoursError несёт границы окна для сообщения пользователю.
type OutsideBusinessHoursError struct {
	Opens  string
	Closes string
}

func (e *OutsideBusinessHoursError) Error() string {
	return fmt.Sprintf("%s: pickups are allowed between %s and %s", ErrOutsideBusinessHours, e.Opens, e.Closes)
}

func (e *OutsideBusinessHoursError) Unwrap() error {
	return ErrOutsideBusinessHours
}

type DailyLimitExceededError struct {
	Limit int
}

func (e *DailyLimitExceededError) Error() string {
	return fmt.Sprintf("%s: %d pickups per day", ErrDailyLimitExceeded, e.Limit)
}

func (e *DailyLimitExceededError) Unwrap() error {
	return ErrDailyLimitExceeded
}
