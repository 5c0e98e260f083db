package services

import "errors"

var (
	// ErrNameTaken is returned when registering with a display name that
	// already belongs to another user.
	ErrNameTaken = errors.New("name already taken")

	// ErrMealNotFound covers both "no such meal" and "not your meal";
	// callers must not be able to tell them apart.
	ErrMealNotFound = errors.New("meal not found")
)
