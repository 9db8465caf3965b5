package order

import (
	"strings"

	"fastfeet/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidProduct(product string) bool {
	return strings.TrimSpace(product) != ""
}

func isValidDeliveryStatus(status entities.DeliveryStatus) bool {
	switch status {
	case entities.DeliveryPending, entities.DeliveryCompleted:
		return true
	default:
		return false
	}
}

func validateCreate(cmd CreateCommand) error {
	if !isValidID(cmd.RecipientID) {
		return ErrInvalidRecipientID
	}
	if !isValidID(cmd.DelivererID) {
		return ErrInvalidDelivererID
	}
	if !isValidProduct(cmd.Product) {
		return ErrInvalidProduct
	}
	if cmd.SignatureID != nil && !isValidID(*cmd.SignatureID) {
		return ErrInvalidSignatureID
	}
	return nil
}

func validateUpdate(cmd UpdateCommand) error {
	if !isValidID(cmd.OrderID) {
		return ErrInvalidOrderID
	}
	if cmd.RecipientID == nil && cmd.DelivererID == nil && cmd.Product == nil && cmd.SignatureID == nil {
		return ErrNoFieldsToUpdate
	}
	if cmd.RecipientID != nil && !isValidID(*cmd.RecipientID) {
		return ErrInvalidRecipientID
	}
	if cmd.DelivererID != nil && !isValidID(*cmd.DelivererID) {
		return ErrInvalidDelivererID
	}
	if cmd.Product != nil && !isValidProduct(*cmd.Product) {
		return ErrInvalidProduct
	}
	if cmd.SignatureID != nil && !isValidID(*cmd.SignatureID) {
		return ErrInvalidSignatureID
	}
	return nil
}

func validateDelivery(cmd DeliveryCommand) error {
	if !isValidID(cmd.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(cmd.SignatureID) {
		return ErrInvalidSignatureID
	}
	return nil
}
