//go:build e2e

package batch_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

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
	planURL   = "/api/batches/plan"
	commitURL = "/api/batches"
)

type BatchSuite struct {
	e2e.SharedSuite
	operator actor.Actor
	owner    uuid.UUID
}

func (s *BatchSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operator = actor.Actor{ID: uuid.New(), Role: actor.RoleOperator}
	s.owner = uuid.New()
}

func TestBatchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BatchSuite))
}

func (s *BatchSuite) commit(tankID uuid.UUID, lots []uuid.UUID, outputKg int64) *nethttptest.ResponseRecorder {
	req := request.CommitBatchRequest{
		OwnerID:  s.owner,
		TankID:   tankID,
		LotIDs:   lots,
		OutputKg: decimal.NewFromInt(outputKg),
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, commitURL, req, &s.operator)
}

// =============================================================================
// TestPlanBatch
// =============================================================================

func (s *BatchSuite) TestPlanBatch() {
	s.Run("Normal case: plan resolves the default output", func() {
		t := s.T()
		lotA := dbtest.CreateLot(t, s.DB, 1, 600, "north grove")
		lotB := dbtest.CreateLot(t, s.DB, 1, 400, "south grove")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, planURL,
			request.PlanBatchRequest{LotIDs: []uuid.UUID{lotA, lotB}}, &s.operator)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BatchPlanResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		expected := response.BatchPlanResponse{
			InputProduct:         1,
			OutputProduct:        10,
			LotIDs:               []uuid.UUID{lotA, lotB},
			TotalQuantityKg:      "1000",
			EstimatedByproductKg: "430",
		}
		if diff := cmp.Diff(expected, res, cmpopts.SortSlices(func(a, b uuid.UUID) bool { return a.String() < b.String() })); diff != "" {
			t.Errorf("Plan mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: explicit output must be mapped", func() {
		t := s.T()
		lot := dbtest.CreateLot(t, s.DB, 1, 600, "north grove")

		alt := int64(11)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, planURL,
			request.PlanBatchRequest{LotIDs: []uuid.UUID{lot}, OutputProduct: &alt}, &s.operator)
		require.Equal(t, http.StatusOK, w.Code)

		unmapped := int64(99)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, planURL,
			request.PlanBatchRequest{LotIDs: []uuid.UUID{lot}, OutputProduct: &unmapped}, &s.operator)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: mixed input products", func() {
		t := s.T()
		lotA := dbtest.CreateLot(t, s.DB, 1, 600, "north grove")
		lotB := dbtest.CreateLot(t, s.DB, 2, 400, "east grove")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, planURL,
			request.PlanBatchRequest{LotIDs: []uuid.UUID{lotA, lotB}}, &s.operator)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: unknown lot", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, planURL,
			request.PlanBatchRequest{LotIDs: []uuid.UUID{uuid.New()}}, &s.operator)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestCommitBatch
// =============================================================================

func (s *BatchSuite) TestCommitBatch() {
	s.Run("Normal case: commit mills lots and fills the tank", func() {
		t := s.T()
		tankID := dbtest.CreateTank(t, s.DB, "T1", 1000, 0, nil, nil)
		lotA := dbtest.CreateLot(t, s.DB, 1, 600, "north grove")
		lotB := dbtest.CreateLot(t, s.DB, 1, 400, "south grove")

		w := s.commit(tankID, []uuid.UUID{lotA, lotB}, 150)
		require.Equal(t, http.StatusCreated, w.Code)

		var res response.BatchCommitResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEqual(t, uuid.Nil, res.BatchID)
		require.Equal(t, "0.15", res.Yield.Ratio)
		require.False(t, res.Yield.Warning)
		require.Equal(t, "150", res.TankStockKg)

		for _, lot := range []uuid.UUID{lotA, lotB} {
			milledBy := dbtest.LotMilledBy(t, s.DB, lot)
			require.NotNil(t, milledBy)
			require.Equal(t, res.BatchID, *milledBy)
		}
		require.Equal(t, "150", dbtest.TankStock(t, s.DB, tankID))
	})

	s.Run("Normal case: out-of-band yield is committed with a warning", func() {
		t := s.T()
		tankID := dbtest.CreateTank(t, s.DB, "T1", 1000, 0, nil, nil)
		lot := dbtest.CreateLot(t, s.DB, 1, 1000, "north grove")

		w := s.commit(tankID, []uuid.UUID{lot}, 50)
		require.Equal(t, http.StatusCreated, w.Code)

		var res response.BatchCommitResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, res.Yield.Warning)
		require.Equal(t, "out_of_range", res.Yield.Status)
	})

	s.Run("Normal case: extreme yield ratio is stored", func() {
		t := s.T()
		tankID := dbtest.CreateTank(t, s.DB, "T1", 10000, 0, nil, nil)
		lot := dbtest.CreateLot(t, s.DB, 1, 1, "north grove")

		w := s.commit(tankID, []uuid.UUID{lot}, 5000)
		require.Equal(t, http.StatusCreated, w.Code)

		var res response.BatchCommitResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, res.Yield.Warning)
		require.Equal(t, "5000", res.Yield.Ratio)
		require.Equal(t, "5000", dbtest.BatchYieldRatio(t, s.DB, res.BatchID))
		require.Equal(t, "5000", dbtest.TankStock(t, s.DB, tankID))
	})

	s.Run("Error case: lots cannot be milled twice", func() {
		t := s.T()
		tankID := dbtest.CreateTank(t, s.DB, "T1", 1000, 0, nil, nil)
		lot := dbtest.CreateLot(t, s.DB, 1, 1000, "north grove")

		require.Equal(t, http.StatusCreated, s.commit(tankID, []uuid.UUID{lot}, 150).Code)
		require.Equal(t, http.StatusConflict, s.commit(tankID, []uuid.UUID{lot}, 150).Code)
		require.Equal(t, "150", dbtest.TankStock(t, s.DB, tankID))
	})

	s.Run("Error case: tank capacity", func() {
		t := s.T()
		tankID := dbtest.CreateTank(t, s.DB, "T1", 200, 100, nil, nil)
		lot := dbtest.CreateLot(t, s.DB, 1, 1000, "north grove")

		w := s.commit(tankID, []uuid.UUID{lot}, 150)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		detail := httptest.ErrorDetail(t, w)
		require.Equal(t, tankID.String(), detail["tank_id"])
		require.Equal(t, "100", detail["available_kg"])
		require.Equal(t, "150", detail["requested_kg"])

		require.Nil(t, dbtest.LotMilledBy(t, s.DB, lot), "rejected commit must not mill lots")
		require.Equal(t, "100", dbtest.TankStock(t, s.DB, tankID))
	})

	s.Run("Error case: tank holds another product", func() {
		t := s.T()
		other := int64(11)
		tankID := dbtest.CreateTank(t, s.DB, "T1", 1000, 100, &other, &s.owner)
		lot := dbtest.CreateLot(t, s.DB, 1, 1000, "north grove")

		w := s.commit(tankID, []uuid.UUID{lot}, 150)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: clients cannot commit", func() {
		t := s.T()
		tankID := dbtest.CreateTank(t, s.DB, "T1", 1000, 0, nil, nil)
		lot := dbtest.CreateLot(t, s.DB, 1, 1000, "north grove")
		client := actor.Actor{ID: uuid.New(), Role: actor.RoleClient}

		req := request.CommitBatchRequest{OwnerID: client.ID, TankID: tankID, LotIDs: []uuid.UUID{lot}, OutputKg: decimal.NewFromInt(150)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL, req, &client)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestTankCheck
// =============================================================================

func (s *BatchSuite) TestTankCheck() {
	s.Run("Normal case: reports remaining capacity", func() {
		t := s.T()
		tankID := dbtest.CreateTank(t, s.DB, "T1", 1000, 250, nil, nil)

		req := request.TankCheckRequest{Product: 10, OwnerID: s.owner, QuantityKg: decimal.NewFromInt(500)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/tanks/"+tankID.String()+"/check", req, &s.operator)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.TankCheckResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "750", res.AvailableKg)
	})
}
