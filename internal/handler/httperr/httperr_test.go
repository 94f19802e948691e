//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"olive-mill/internal/handler/httperr"
	"olive-mill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"input", errs.Mark(errors.New("bad quantity"), errs.ErrInput), http.StatusBadRequest},
		{"not found", errs.Mark(errors.New("no line"), errs.ErrNotFound), http.StatusNotFound},
		{"forbidden", errs.Mark(errors.New("not yours"), errs.ErrForbidden), http.StatusForbidden},
		{"conflict", errs.Mark(errors.New("overlap"), errs.ErrConflict), http.StatusConflict},
		{"capacity", errs.Mark(errors.New("tank full"), errs.ErrCapacity), http.StatusUnprocessableEntity},
		{"wrapped category", errs.Wrap(errs.Mark(errors.New("overlap"), errs.ErrConflict), "create"), http.StatusConflict},
		{"uncategorized", errors.New("driver exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, httperr.StatusOf(tc.err))
		})
	}
}
