package sample

import "errors"

var (
	// ErrLengthMismatch indicates the observed and predicted sequences differ in length.
	ErrLengthMismatch = errors.New("sample: observed and predicted sequences differ in length")
	// ErrInsufficientData indicates the sample holds fewer than two paired points.
	ErrInsufficientData = errors.New("sample: at least two paired points are required")
	// ErrDegenerateInput indicates a formula would divide by a zero standard
	// deviation or zero covariance (constant or perfectly uncorrelated series).
	ErrDegenerateInput = errors.New("sample: degenerate input (zero variance or covariance)")
)
