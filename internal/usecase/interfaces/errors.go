package interfaces

import "errors"

// ErrDuplicateKey is returned by Create when another record already holds
// the same natural key (item code, customer account number).
var ErrDuplicateKey = errors.New("duplicate key")
