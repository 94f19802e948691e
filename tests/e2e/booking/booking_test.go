//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"olive-mill/internal/domain/actor"
	"olive-mill/internal/handler/dto/request"
	"olive-mill/internal/handler/dto/response"
	"olive-mill/tests/common/dbtest"
	"olive-mill/tests/common/httptest"
	"olive-mill/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	lineBookingsURL = "/api/lines/%s/bookings"
)

var day = time.Date(2030, time.November, 4, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type BookingSuite struct {
	e2e.SharedSuite
	operator actor.Actor
	client   actor.Actor
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operator = actor.Actor{ID: uuid.New(), Role: actor.RoleOperator}
	s.client = actor.Actor{ID: uuid.New(), Role: actor.RoleClient}
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) book(lineID uuid.UUID, kg int64, start time.Time, act *actor.Actor) (int, *response.BookingResponse) {
	req := request.CreateBookingRequest{
		LineID:      lineID,
		ProductType: 1,
		QuantityKg:  decimal.NewFromInt(kg),
		Start:       start,
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, act)
	if w.Code != http.StatusCreated {
		return w.Code, nil
	}
	var res response.BookingResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return w.Code, &res
}

func requireInstant(t *testing.T, want time.Time, raw any) {
	t.Helper()
	str, ok := raw.(string)
	require.True(t, ok, "expected RFC3339 string, got %v", raw)
	got, err := time.Parse(time.RFC3339, str)
	require.NoError(t, err)
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: end derives from quantity and throughput", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)

		code, res := s.book(lineID, 500, at(9, 0), &s.client)
		require.Equal(t, http.StatusCreated, code)

		expected := &response.BookingResponse{
			LineID:      lineID,
			LineName:    "Line 1",
			RequesterID: s.client.ID,
			ProductType: 1,
			QuantityKg:  "500",
			Start:       at(9, 0),
			End:         at(9, 30),
			Status:      "provisional",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt"),
			cmpopts.EquateApproxTime(0),
		}
		if diff := cmp.Diff(expected, res, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: back-to-back bookings do not conflict", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)

		code, _ := s.book(lineID, 500, at(9, 0), &s.client)
		require.Equal(t, http.StatusCreated, code)
		code, res := s.book(lineID, 200, at(9, 30), &s.client)
		require.Equal(t, http.StatusCreated, code)
		require.True(t, at(9, 42).Equal(res.End))
	})

	s.Run("Error case: overlap returns the next free grid slot", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		_, first := s.book(lineID, 500, at(9, 0), &s.client)
		_, _ = s.book(lineID, 200, at(9, 30), &s.client)

		req := request.CreateBookingRequest{LineID: lineID, ProductType: 1, QuantityKg: decimal.NewFromInt(200), Start: at(9, 15)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, &s.operator)
		require.Equal(t, http.StatusConflict, w.Code)

		detail := httptest.ErrorDetail(t, w)
		require.Equal(t, first.ID.String(), detail["conflicting_booking_id"])
		requireInstant(t, at(9, 45), detail["proposed_start"])
		requireInstant(t, at(9, 57), detail["proposed_end"])
	})

	s.Run("Normal case: closed bookings free their slot", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		_, first := s.book(lineID, 500, at(9, 0), &s.client)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+first.ID.String()+"/close", nil, &s.operator)
		require.Equal(t, http.StatusNoContent, w.Code)

		code, _ := s.book(lineID, 500, at(9, 0), &s.client)
		require.Equal(t, http.StatusCreated, code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+first.ID.String()+"/close", nil, &s.operator)
		require.Equal(t, http.StatusConflict, w.Code, "closing twice must be rejected")
	})

	s.Run("Normal case: requesters close their own bookings only", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		_, booking := s.book(lineID, 500, at(9, 0), &s.client)
		require.NotNil(t, booking)
		closeURL := bookingsURL + "/" + booking.ID.String() + "/close"

		stranger := actor.Actor{ID: uuid.New(), Role: actor.RoleClient}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, closeURL, nil, &stranger)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, closeURL, nil, &s.client)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("Error case: clients cannot book for others", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		other := uuid.New()

		req := request.CreateBookingRequest{LineID: lineID, RequesterID: &other, ProductType: 1, QuantityKg: decimal.NewFromInt(100), Start: at(9, 0)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, &s.client)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: unknown line", func() {
		code, _ := s.book(uuid.New(), 100, at(9, 0), &s.client)
		require.Equal(s.T(), http.StatusNotFound, code)
	})

	s.Run("Concurrency: overlapping requests admit exactly one booking", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)

		const workers = 8
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				requester := actor.Actor{ID: uuid.New(), Role: actor.RoleClient}
				start := at(10, 0).Add(time.Duration(i) * time.Minute)
				codes[i], _ = s.book(lineID, 500, start, &requester)
			}(i)
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusConflict, c)
		}
		require.Equal(t, 1, created)
	})
}

// =============================================================================
// TestUpdateBooking
// =============================================================================

func (s *BookingSuite) TestUpdateBooking() {
	s.Run("Normal case: reschedule marks modified and recomputes end", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		_, b := s.book(lineID, 500, at(9, 0), &s.client)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+b.ID.String(),
			map[string]any{"start": at(11, 0), "quantity_kg": "250"}, &s.client)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "modified", res.Status)
		require.True(t, at(11, 15).Equal(res.End))
	})

	s.Run("Normal case: editing does not collide with itself", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		_, b := s.book(lineID, 500, at(9, 0), &s.client)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+b.ID.String(),
			map[string]any{"start": at(9, 10)}, &s.client)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error case: another client cannot edit", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		_, b := s.book(lineID, 500, at(9, 0), &s.client)
		intruder := actor.Actor{ID: uuid.New(), Role: actor.RoleClient}

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+b.ID.String(),
			map[string]any{"start": at(12, 0)}, &intruder)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Normal case: operator corrects the end", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		_, b := s.book(lineID, 500, at(9, 0), &s.client)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+b.ID.String()+"/correct-end",
			map[string]any{"end": at(9, 50)}, &s.operator)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, at(9, 50).Equal(res.End))
	})
}

// =============================================================================
// TestListLineBookings
// =============================================================================

func (s *BookingSuite) TestListLineBookings() {
	s.Run("Normal case: pages through bookings in start order", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		for h := 8; h < 13; h++ {
			code, _ := s.book(lineID, 500, at(h, 0), &s.client)
			require.Equal(t, http.StatusCreated, code)
		}

		var starts []time.Time
		url := fmt.Sprintf(lineBookingsURL, lineID) + "?limit=2"
		next := ""
		for page := 0; page < 5; page++ {
			pageURL := url
			if next != "" {
				pageURL += "&after=" + next
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, pageURL, nil, &s.operator)
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Bookings   []response.BookingListItemResponse `json:"bookings"`
				NextCursor string                             `json:"next_cursor"`
			}
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
			for _, b := range body.Bookings {
				starts = append(starts, b.Start)
			}
			if body.NextCursor == "" {
				break
			}
			next = body.NextCursor
		}

		require.Len(t, starts, 5)
		for i, st := range starts {
			require.True(t, at(8+i, 0).Equal(st))
		}
	})

	s.Run("Normal case: clients see occupancy but only their own requester", func() {
		t := s.T()
		lineID := dbtest.CreateLine(t, s.DB, "Line 1", 1000)
		other := actor.Actor{ID: uuid.New(), Role: actor.RoleClient}
		_, mine := s.book(lineID, 500, at(8, 0), &s.client)
		_, theirs := s.book(lineID, 500, at(9, 0), &other)
		require.NotNil(t, mine)
		require.NotNil(t, theirs)

		list := func(act *actor.Actor) map[uuid.UUID]*uuid.UUID {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(lineBookingsURL, lineID), nil, act)
			require.Equal(t, http.StatusOK, w.Code)
			var body struct {
				Bookings []response.BookingListItemResponse `json:"bookings"`
			}
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
			got := make(map[uuid.UUID]*uuid.UUID, len(body.Bookings))
			for _, b := range body.Bookings {
				got[b.ID] = b.RequesterID
			}
			return got
		}

		asClient := list(&s.client)
		require.Len(t, asClient, 2)
		require.NotNil(t, asClient[mine.ID])
		require.Equal(t, s.client.ID, *asClient[mine.ID])
		require.Nil(t, asClient[theirs.ID])

		asOperator := list(&s.operator)
		require.NotNil(t, asOperator[theirs.ID])
		require.Equal(t, other.ID, *asOperator[theirs.ID])
	})
}
