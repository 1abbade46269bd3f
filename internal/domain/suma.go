package domain

// OperationSum is the operation name reported in every SumaResponse.
const OperationSum = "suma"

// SumaRequest holds the two operands of an addition.
// Missing JSON fields decode to zero.
type SumaRequest struct {
	A int32 `json:"a"`
	B int32 `json:"b"`
}

// SumaResponse is the result of a successful addition.
// It is never constructed when the sum overflows.
type SumaResponse struct {
	A         int32  `json:"a"`
	B         int32  `json:"b"`
	Resultado int32  `json:"resultado"`
	Operacion string `json:"operacion"`
}
