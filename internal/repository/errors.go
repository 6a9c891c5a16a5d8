package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate signals a unique-constraint violation. The duplicate-pending
// and one-review-per-request invariants are enforced by the schema, so the
// atomic check-then-insert surfaces here rather than as a racy pre-check.
var ErrDuplicate = errors.New("duplicate row")

const uniqueViolationCode = "23505"

func translateUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return err
}
