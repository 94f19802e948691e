package response

import "olive-mill/internal/usecase/queries"

type MappingCandidate struct {
	OutputProduct int64 `json:"output_product"`
	IsDefault     bool  `json:"is_default"`
}

type ResolvedMappingResponse struct {
	InputProduct  int64              `json:"input_product"`
	OutputProduct int64              `json:"output_product"`
	IsDefault     bool               `json:"is_default"`
	Candidates    []MappingCandidate `json:"candidates"`
}

func FromResolvedMapping(m *queries.ResolvedMapping) *ResolvedMappingResponse {
	res := &ResolvedMappingResponse{
		InputProduct:  int64(m.InputProduct),
		OutputProduct: int64(m.OutputProduct),
		IsDefault:     m.IsDefault,
		Candidates:    make([]MappingCandidate, len(m.Candidates)),
	}
	for i, c := range m.Candidates {
		res.Candidates[i] = MappingCandidate{OutputProduct: int64(c.OutputProduct), IsDefault: c.IsDefault}
	}
	return res
}
