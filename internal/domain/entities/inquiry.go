package entities

import "time"

// InquiryStatus tracks whether the receiving owner has handled an inquiry.
//
// Transitions: pending -> responded -> closed. Closing an unanswered
// inquiry is also allowed (the owner declines without replying).

type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Inquiry links a prospective buyer to a property and its owner.
//
// Storage model (DynamoDB):
//   - Table: inquiries
//   - PK: id
//   - GSI: receiver_id-index (PK: receiver_id)

type Inquiry struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"property_id"`
	SenderID   string        `json:"sender_id"`
	ReceiverID string        `json:"receiver_id"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

var inquiryTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryStatusPending:   {InquiryStatusResponded, InquiryStatusClosed},
	InquiryStatusResponded: {InquiryStatusClosed},
	InquiryStatusClosed:    {},
}

// CanTransitionTo reports whether the inquiry lifecycle allows moving to target.
func (i Inquiry) CanTransitionTo(target InquiryStatus) bool {
	for _, allowed := range inquiryTransitions[i.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}
