package request

// CreateInquiryRequest is the buyer-to-owner inquiry payload.
type CreateInquiryRequest struct {
	Message string `json:"message" binding:"required,min=10,max=2000"`
}
