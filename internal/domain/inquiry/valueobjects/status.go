package valueobjects

import "fmt"

// Status is the workflow state of an inquiry.
//
// The main chain is registered → ai_review → pending_approval → ai_processing
// → completed/admin_confirm. The only backward edge through the chain is
// pending_approval → registered, used when an admin sends an inquiry back for
// re-analysis.
type Status string

const (
	StatusRegistered      Status = "registered"
	StatusAIReview        Status = "ai_review"
	StatusPendingApproval Status = "pending_approval"
	StatusAIProcessing    Status = "ai_processing"
	StatusCompleted       Status = "completed"
	StatusAdminConfirm    Status = "admin_confirm"
	StatusRework          Status = "rework"

	// Legacy values kept for rows written before the workflow existed.
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
	StatusClosed   Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusRegistered:      true,
	StatusAIReview:        true,
	StatusPendingApproval: true,
	StatusAIProcessing:    true,
	StatusCompleted:       true,
	StatusAdminConfirm:    true,
	StatusRework:          true,
	StatusPending:         true,
	StatusAnswered:        true,
	StatusClosed:          true,
}

var statusTransitions = map[Status][]Status{
	StatusRegistered: {
		StatusAIReview,
	},
	StatusAIReview: {
		StatusPendingApproval,
		StatusRegistered, // pipeline revert on failure
	},
	StatusPendingApproval: {
		StatusAIProcessing,
		StatusRegistered, // admin re-analysis request
	},
	StatusAIProcessing: {
		StatusCompleted,
		StatusAdminConfirm,
		StatusRework,
	},
	StatusCompleted: {
		StatusRework,
		StatusAdminConfirm,
	},
	StatusAdminConfirm: {
		StatusCompleted,
		StatusRework,
	},
	StatusRework: {
		StatusAIProcessing,
		StatusCompleted,
		StatusAdminConfirm,
	},
}

// defaultStepMessages are the log texts recorded when a transition carries no
// explicit note.
var defaultStepMessages = map[Status]string{
	StatusRegistered:      "문의글이 등록되었습니다.",
	StatusAIReview:        "AI가 문의 내용을 분석하고 있습니다.",
	StatusPendingApproval: "관리자 승인을 대기하고 있습니다.",
	StatusAIProcessing:    "AI가 작업을 진행하고 있습니다.",
	StatusCompleted:       "작업이 완료되었습니다.",
	StatusAdminConfirm:    "관리자 확인이 필요합니다.",
	StatusRework:          "재작업이 요청되었습니다.",
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsWorkflowStep reports whether the status participates in the automated
// workflow (legacy values do not).
func (s Status) IsWorkflowStep() bool {
	_, ok := defaultStepMessages[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// DefaultMessage returns the standard log text for entering this step.
func (s Status) DefaultMessage() string {
	return defaultStepMessages[s]
}

func (s Status) IsRegistered() bool {
	return s == StatusRegistered
}

func (s Status) IsAIReview() bool {
	return s == StatusAIReview
}

func (s Status) IsPendingApproval() bool {
	return s == StatusPendingApproval
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid inquiry status: %s", s)
	}
	return st, nil
}
