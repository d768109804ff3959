package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDegenerateRate indicates the annuity formula was evaluated with a zero
// monthly rate. It should never surface to callers: the projection service
// branches to the linear amortization form before dividing by the rate.
var ErrDegenerateRate = errors.New("degenerate zero interest rate")
