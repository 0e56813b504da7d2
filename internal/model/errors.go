package model

import "errors"

// ErrInvalidDateRange rejects a royalty query before any vendor call is made.
var ErrInvalidDateRange = errors.New("invalid date range")
