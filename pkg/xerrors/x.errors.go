package xerrors

import "errors"
import "github.com/jackc/pgx/v5/pgconn"

func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input provided")
)

// Case management
var (
	ErrCaseNotFound    = errors.New("case not found")
	ErrInvalidStatus   = errors.New("invalid case status")
	ErrUnitNameMissing = errors.New("unit name is required")
)

// Directory
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserIDRequired    = errors.New("user ID required")
)

// Service catalog / remarks
var (
	ErrServiceExists       = errors.New("service already exists")
	ErrServiceNameRequired = errors.New("service name is required")
	ErrRemarkFields        = errors.New("missing required fields")
)
