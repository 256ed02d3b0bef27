package request

// UpdatePropertyStatusRequest moves a listing through its publish lifecycle.
// Target validity against the state machine is decided by the use case; this
// only rejects values outside the vocabulary.
type UpdatePropertyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft pending_verification live rejected delisted"`
}

// UpdateVerificationRequest sets the review outcome for a listing.
type UpdateVerificationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}
