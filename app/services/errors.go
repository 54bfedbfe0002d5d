package services

import "errors"

var (
	// ErrIllegalTransition is returned when a status change would move a
	// transaction out of a terminal state.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrTransactionGone is returned when the transaction was deleted
	// while its QR payload was being generated.
	ErrTransactionGone = errors.New("transaction deleted during qr generation")
)
