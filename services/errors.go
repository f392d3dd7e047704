package services

import (
	"errors"

	"dailybite/store"
)

var (
	// ErrNotFound signals a referenced user that does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidArgument signals input outside the accepted range.
	ErrInvalidArgument = errors.New("invalid argument")
)

// translateStoreErr lifts store-level lookup failures into the service
// taxonomy; anything else passes through for the caller to retry.
func translateStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
