package builder

import (
	"github.com/Vayain/soul-builder/internal/utils"
	"github.com/Vayain/soul-builder/questions"
	"github.com/Vayain/soul-builder/sessions"
)

// Code classifies a result that is not a plain success.
type Code string

const (
	CodeNoSession          Code = "NO_SESSION"          // unknown or expired session id
	CodeValidationRequired Code = "VALIDATION_REQUIRED" // empty answer to a required question
	CodeNotComplete        Code = "NOT_COMPLETE"        // generate/export before the last answer
	CodeAlreadyComplete    Code = "ALREADY_COMPLETE"    // informational, answer after completion
	CodeInternal           Code = "INTERNAL"
)

// Result is the uniform shape returned by every operation. Failures are
// values with Success false; nothing here is ever raised.
type Result struct {
	Success        bool    `json:"success"`
	Code           Code    `json:"code,omitempty"`
	Message        string  `json:"message"`
	SessionID      string  `json:"sessionId,omitempty"`
	NextQuestion   *string `json:"nextQuestion,omitempty"`
	Optional       *bool   `json:"optional,omitempty"`
	CurrentStep    *int    `json:"currentStep,omitempty"`
	TotalSteps     *int    `json:"totalSteps,omitempty"`
	IsComplete     *bool   `json:"isComplete,omitempty"`
	RemainingSteps *int    `json:"remainingSteps,omitempty"`
	Document       *string `json:"document,omitempty"`
	Filename       *string `json:"filename,omitempty"`
}

func failure(code Code, sessionID, message string) Result {
	return Result{
		Success:   false,
		Code:      code,
		Message:   message,
		SessionID: sessionID,
	}
}

// withProgress fills the step counters and, while awaiting an answer, the question.
func (r Result) withProgress(s sessions.Session) Result {
	r.SessionID = s.ID
	r.CurrentStep = utils.Ptr(s.CurrentStep)
	r.TotalSteps = utils.Ptr(questions.TotalSteps)
	r.IsComplete = utils.Ptr(s.IsComplete())
	if q, ok := s.CurrentQuestion(); ok {
		r.NextQuestion = utils.Ptr(q.Prompt)
		r.Optional = utils.Ptr(q.Optional)
	}
	return r
}
