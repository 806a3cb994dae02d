package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrStructuralMismatch    = crerr.New("structural mismatch")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
