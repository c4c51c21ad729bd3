package store

import "errors"

// Each of these marks a precondition that was not met. The store is left
// exactly as it was; callers that only care about the permissive behaviour
// can ignore them.
var (
	ErrNotLoggedIn          = errors.New("no user is signed in")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrDesignNotFound       = errors.New("design not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
