package service

import "errors"

// Sentinel errors the shell translates into user-facing messages. None of
// them is fatal; the menu loop always resumes.
var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicate           = errors.New("record already exists")
	ErrCertificateNotFound = errors.New("certificate not approved; contact admin")
	ErrCertificateTaken    = errors.New("certificate is already registered to another seller")
	ErrProductUnavailable  = errors.New("product not found or not available")
	ErrInsufficientStock   = errors.New("requested quantity exceeds available stock")
	ErrNotPurchased        = errors.New("only purchased products can be reviewed")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrAlreadyWishlisted   = errors.New("product is already in the wishlist")
	ErrNotWishlisted       = errors.New("product is not in the wishlist")
	ErrNotPending          = errors.New("product is not pending review")
	ErrResetTokenInvalid   = errors.New("invalid or expired reset token")
)
