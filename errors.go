package custdb

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrFieldNotFound = errors.New("field not found")
var ErrDatatypeMismatch = errors.New("datatype mismatch")
var ErrEmptyID = errors.New("empty id")

// RecordNotFoundError is returned by every lookup for an id the store does
// not hold. It matches ErrRecordNotFound under errors.Is.
type RecordNotFoundError struct {
	ID ID
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("No customer found matching id: %s", e.ID.String())
}

func (e *RecordNotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}
