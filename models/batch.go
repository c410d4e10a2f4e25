package models

// BatchCreateFailure records one failed item of a batch create. The
// original payload and input index are echoed back so the client can
// retry just the failed subset.
type BatchCreateFailure struct {
	Index int                  `json:"index"`
	Error string               `json:"error"`
	Data  VoucherCreateRequest `json:"data"`
}

// BatchCreateResult aggregates the outcome of a batch create call
type BatchCreateResult struct {
	SuccessCount int                  `json:"success_count"`
	FailureCount int                  `json:"failure_count"`
	Total        int                  `json:"total"`
	Failures     []BatchCreateFailure `json:"failures"`
}

// BatchUpdateFailure records one failed item of a batch update
type BatchUpdateFailure struct {
	ID    uint   `json:"id"`
	Error string `json:"error"`
}

// BatchUpdateResult aggregates the outcome of a batch update call
type BatchUpdateResult struct {
	SuccessCount int                  `json:"success_count"`
	FailureCount int                  `json:"failure_count"`
	Total        int                  `json:"total"`
	Failures     []BatchUpdateFailure `json:"failures"`
}
