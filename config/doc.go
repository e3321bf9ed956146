// Package config resolves the requested matrix dimensions into an immutable
// configuration value.
//
// Rules (first match wins):
//
//	--size N            rows = cols = N; N must be > 0; --row/--col must be absent
//	--row R --col C     rows = R, cols = C; both must be > 0
//	--row R | --col C   the missing dimension falls back to DefaultDimension
//	(nothing)           both fall back to DefaultDimension; a diagnostic is logged
//
// Rows*Cols (plus the misalignment padding) may not exceed MaxElements; the
// check is done by division so huge flag values cannot overflow int.
//
// Every failure wraps ErrConfig, so callers need a single errors.Is check to
// decide the exit status. Resolution has no side effects besides logging.
package config
