package model

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrUnknownMeal      = errors.New("unknown meal")
	ErrInvalidOrderData = errors.New("invalid order data")
	ErrStorageFailure   = errors.New("storage failure")
)
