package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches a natural-key lookup. Callers
// treat it as a defined outcome, not a failure.
var ErrNotFound = errors.New("repository: record not found")

// ErrUnavailable marks connection-level failures. Once seen, every further
// storage operation in the run is expected to fail too.
var ErrUnavailable = errors.New("repository: storage unavailable")

// translate maps driver/gorm errors onto the repository sentinels so the sync
// engine can branch on error class instead of storage internals.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isConnFailure(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

func isConnFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, gorm.ErrInvalidDB) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
