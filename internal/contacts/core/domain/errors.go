package domain

import (
	"errors"
	"fmt"
)

// ErrDataAccess matches every DataAccessError via errors.Is.
var ErrDataAccess = errors.New("data access error")

// DataAccessError reports a connectivity or query failure of the record store.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataAccess.Error(), e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

func (e *DataAccessError) Is(target error) bool { return target == ErrDataAccess }

// NewDataAccessError wraps err, returning nil for a nil err.
func NewDataAccessError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dae *DataAccessError
	if errors.As(err, &dae) {
		return err
	}
	return &DataAccessError{Op: op, Err: err}
}
