package mysql

import "errors"

// Initialization failures are reported wrapped in one of these kinds.
var (
	ErrConfig     = errors.New("mysql: invalid configuration")
	ErrIO         = errors.New("mysql: read tls material")
	ErrConnection = errors.New("mysql: connection failed")
	ErrStatement  = errors.New("mysql: statement failed")
)

// KindOf returns a short label for the failure kind of err, for logging.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, ErrConnection):
		return "connection"
	case errors.Is(err, ErrStatement):
		return "statement"
	default:
		return "unknown"
	}
}
