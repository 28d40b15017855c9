package auth

import "errors"

var (
	// ErrInvalidCredentials is the only login failure a caller gets to see.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidOldPassword is returned when the provided old password does not match the user's current password.
	ErrInvalidOldPassword = errors.New("current password is incorrect")

	// ErrUserExists is returned when attempting to create a user whose username is taken.
	ErrUserExists = errors.New("user with this username already exists")

	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled user account.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidPassword is returned when the provided password is incorrect during authentication.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordChangeUnsupported is returned when the credential source has no stored password to change.
	ErrPasswordChangeUnsupported = errors.New("password change is not supported for static credentials")

	// ErrEmptyPassword is returned when a user would be created or updated with an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
