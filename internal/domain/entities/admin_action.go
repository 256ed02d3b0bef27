package entities

import "time"

// AdminActionType names a recorded administrative decision.
type AdminActionType string

const (
	AdminActionApproveProperty AdminActionType = "approve_property"
	AdminActionRejectProperty  AdminActionType = "reject_property"
	AdminActionDelistProperty  AdminActionType = "delist_property"
	AdminActionVerifyProperty  AdminActionType = "verify_property"
	AdminActionRequeueProperty AdminActionType = "requeue_property"
	AdminActionFlagDuplicate   AdminActionType = "flag_duplicate"
)

// AdminAction is the audit record written on every administrative
// transition and on duplicate flags. The analytics overview reads these
// back to report moderation volume.
//
// Storage model (DynamoDB):
//   - Table: admin_actions
//   - PK: id

type AdminAction struct {
	ID        string          `json:"id"`
	AdminID   string          `json:"admin_id"`
	Action    AdminActionType `json:"action"`
	TargetID  string          `json:"target_id"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
