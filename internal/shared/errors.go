package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Loader errors
	ErrLoadFailed = fmt.Errorf("failed to load user records")
	ErrNoUsers    = fmt.Errorf("no user records found")

	// Lookup errors
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrBookNotFound = fmt.Errorf("book not found")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
