package queries

import (
	"errors"
	"time"

	"olive-mill/internal/pkg/errs"
)

var (
	ErrInvalidCursor = errs.Mark(errors.New("invalid cursor"), errs.ErrInput)
	ErrInvalidWindow = errs.Mark(errors.New("window end must be after its start"), errs.ErrInput)
)

// TimeWindow bounds a listing. A zero bound is open.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

func (w TimeWindow) Validate() error {
	if !w.From.IsZero() && !w.To.IsZero() && !w.To.After(w.From) {
		return ErrInvalidWindow
	}
	return nil
}
