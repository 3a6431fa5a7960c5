package domain

type NotificationKind string

const (
	NotificationRequestSubmitted  NotificationKind = "REQUEST_SUBMITTED"
	NotificationFeedbackSubmitted NotificationKind = "FEEDBACK_SUBMITTED"
	NotificationRequestApproved   NotificationKind = "REQUEST_APPROVED"
	NotificationRequestRejected   NotificationKind = "REQUEST_REJECTED"
	NotificationRequestCommented  NotificationKind = "REQUEST_COMMENTED"
	NotificationFeedbackReplied   NotificationKind = "FEEDBACK_REPLIED"
	NotificationRoleGranted       NotificationKind = "ROLE_GRANTED"
	NotificationPendingDigest     NotificationKind = "PENDING_DIGEST"
)

// Notification is the payload handed to the chat transport. The core fills in
// a plain-text rendering; transports may re-render from Attributes.
type Notification struct {
	Kind       NotificationKind  `json:"kind"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
