package request

type SetDefaultMappingRequest struct {
	InputProduct  int64 `json:"input_product" binding:"required,min=1"`
	OutputProduct int64 `json:"output_product" binding:"required,min=1"`
}
