package model

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrRecordNotFound       = errors.New("record not found")
	ErrItemNotFound         = errors.New("inventory item not found")
	ErrConfirmationMismatch = errors.New("confirmation phrase mismatch")
)
