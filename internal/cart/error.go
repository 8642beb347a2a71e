package cart

import "errors"

var (
	// -- Validation & Input --
	ErrAlreadyInCart = errors.New("equipment already in cart")
	ErrItemNotFound  = errors.New("cart item not found")

	// -- Storage Failures --
	ErrFailedLoadCart = errors.New("failed to load cart")
	ErrFailedSaveCart = errors.New("failed to save cart")
)
