package notify

import (
	"fmt"
	"strconv"

	"hr-intake-backend/internal/domain"
)

func RequestSubmitted(req *domain.Request, submitter *domain.Participant) domain.Notification {
	attrs := map[string]string{
		"request_id": strconv.FormatInt(req.ID, 10),
		"seq":        strconv.Itoa(int(req.Seq)),
		"category":   req.Category,
	}
	who := "unknown participant"
	if submitter != nil {
		who = fmt.Sprintf("%s (%s, %s)", submitter.FullName, submitter.Department, submitter.Position)
		attrs["submitter_name"] = submitter.FullName
		attrs["submitter_department"] = submitter.Department
		attrs["submitter_position"] = submitter.Position
	}
	return domain.Notification{
		Kind:       domain.NotificationRequestSubmitted,
		Title:      fmt.Sprintf("New request #%d: %s", req.Seq, req.Category),
		Message:    fmt.Sprintf("From %s:\n%s", who, req.Text),
		Attributes: attrs,
	}
}

// FeedbackSubmitted carries the content only; the author stays anonymous.
func FeedbackSubmitted(fb *domain.Feedback) domain.Notification {
	return domain.Notification{
		Kind:       domain.NotificationFeedbackSubmitted,
		Title:      "New anonymous feedback",
		Message:    fb.Text,
		Attributes: map[string]string{"feedback_id": strconv.FormatInt(fb.ID, 10)},
	}
}

// RequestUpdated tells the owner about a status change or a comment.
func RequestUpdated(req *domain.Request, update domain.StatusUpdate) domain.Notification {
	n := domain.Notification{
		Kind: domain.NotificationRequestCommented,
		Attributes: map[string]string{
			"request_id": strconv.FormatInt(req.ID, 10),
			"seq":        strconv.Itoa(int(req.Seq)),
		},
	}
	if update.Status != nil {
		n.Attributes["status"] = string(*update.Status)
		switch *update.Status {
		case domain.RequestStatusApproved:
			n.Kind = domain.NotificationRequestApproved
			n.Title = fmt.Sprintf("Request #%d approved", req.Seq)
		case domain.RequestStatusRejected:
			n.Kind = domain.NotificationRequestRejected
			n.Title = fmt.Sprintf("Request #%d rejected", req.Seq)
		}
	} else {
		n.Title = fmt.Sprintf("New comment on request #%d", req.Seq)
	}
	if update.Response != nil {
		n.Message = *update.Response
		n.Attributes["response"] = *update.Response
	}
	return n
}

// FeedbackReplied includes the response only, not the original text.
func FeedbackReplied(feedbackID int64, response string) domain.Notification {
	return domain.Notification{
		Kind:       domain.NotificationFeedbackReplied,
		Title:      "HR replied to your feedback",
		Message:    response,
		Attributes: map[string]string{"feedback_id": strconv.FormatInt(feedbackID, 10)},
	}
}

func RoleGranted() domain.Notification {
	return domain.Notification{
		Kind:    domain.NotificationRoleGranted,
		Title:   "You now have HR access",
		Message: "You can review pending requests and feedback.",
	}
}

func PendingDigest(requests, feedback, minAgeHours int) domain.Notification {
	return domain.Notification{
		Kind:  domain.NotificationPendingDigest,
		Title: "Items waiting for HR",
		Message: fmt.Sprintf("%d request(s) and %d feedback item(s) have been waiting more than %d hours.",
			requests, feedback, minAgeHours),
		Attributes: map[string]string{
			"pending_requests": strconv.Itoa(requests),
			"pending_feedback": strconv.Itoa(feedback),
		},
	}
}
