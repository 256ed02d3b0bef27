package response

import (
	"time"

	"github.com/x17green/realest-sub003/internal/domain/entities"
)

type InquiryResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:         i.ID,
		PropertyID: i.PropertyID,
		SenderID:   i.SenderID,
		ReceiverID: i.ReceiverID,
		Message:    i.Message,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func FromInquiries(inquiries []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(inquiries))
	for _, i := range inquiries {
		out = append(out, FromInquiry(i))
	}
	return out
}
