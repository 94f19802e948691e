package response

import (
	"olive-mill/internal/usecase/commands"

	"github.com/google/uuid"
)

type BatchPlanResponse struct {
	InputProduct         int64       `json:"input_product"`
	OutputProduct        int64       `json:"output_product"`
	LotIDs               []uuid.UUID `json:"lot_ids"`
	TotalQuantityKg      string      `json:"total_quantity_kg"`
	EstimatedByproductKg string      `json:"estimated_byproduct_kg"`
}

type YieldResponse struct {
	Ratio   string `json:"ratio"`
	Status  string `json:"status"`
	Min     string `json:"min"`
	Max     string `json:"max"`
	Warning bool   `json:"warning"`
}

type BatchCommitResponse struct {
	BatchID uuid.UUID `json:"batch_id"`
	BatchPlanResponse
	OutputKg       string        `json:"output_kg"`
	Yield          YieldResponse `json:"yield"`
	TankStockKg    string        `json:"tank_stock_kg"`
	LedgerRecorded bool          `json:"ledger_recorded"`
}

func FromBatchPlan(p *commands.BatchPlan) *BatchPlanResponse {
	return &BatchPlanResponse{
		InputProduct:         int64(p.InputProduct),
		OutputProduct:        int64(p.OutputProduct),
		LotIDs:               p.LotIDs,
		TotalQuantityKg:      p.TotalQuantityKg.String(),
		EstimatedByproductKg: p.EstimatedByproductKg.String(),
	}
}

func FromCommitResult(r *commands.CommitBatchResult) *BatchCommitResponse {
	return &BatchCommitResponse{
		BatchID:           r.BatchID,
		BatchPlanResponse: *FromBatchPlan(&r.BatchPlan),
		OutputKg:          r.OutputKg.String(),
		Yield: YieldResponse{
			Ratio:   r.Yield.Ratio.String(),
			Status:  string(r.Yield.Status),
			Min:     r.Yield.Min.String(),
			Max:     r.Yield.Max.String(),
			Warning: r.Yield.IsWarning(),
		},
		TankStockKg:    r.TankStockKg.String(),
		LedgerRecorded: r.LedgerRecorded,
	}
}
