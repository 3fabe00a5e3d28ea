package sessions

import (
	"time"

	apperrors "github.com/Vayain/soul-builder/internal/errors"
	"github.com/Vayain/soul-builder/questions"
)

// Answers has one slot per questionnaire field. A slot is meaningful only once
// its question has been answered, i.e. its position is below CurrentStep.
type Answers struct {
	Name        string
	Personality string
	Values      string
	Tone        string
	Backstory   string
	Signature   string // empty when skipped
}

// Get returns the slot for field.
func (a Answers) Get(field questions.Field) (string, bool) {
	switch field {
	case questions.FieldName:
		return a.Name, true
	case questions.FieldPersonality:
		return a.Personality, true
	case questions.FieldValues:
		return a.Values, true
	case questions.FieldTone:
		return a.Tone, true
	case questions.FieldBackstory:
		return a.Backstory, true
	case questions.FieldSignature:
		return a.Signature, true
	}
	return "", false
}

func (a *Answers) set(field questions.Field, value string) bool {
	switch field {
	case questions.FieldName:
		a.Name = value
	case questions.FieldPersonality:
		a.Personality = value
	case questions.FieldValues:
		a.Values = value
	case questions.FieldTone:
		a.Tone = value
	case questions.FieldBackstory:
		a.Backstory = value
	case questions.FieldSignature:
		a.Signature = value
	default:
		return false
	}
	return true
}

// Session is one user's run through the questionnaire.
type Session struct {
	ID          string    // opaque caller supplied or generated identifier
	CurrentStep int       // 1..TotalSteps awaiting an answer, TotalSteps+1 complete
	Answers     Answers   // filled in question order
	CreatedAt   time.Time // set once; expiry is measured from here
}

// New returns a session awaiting the first question.
func New(id string, now time.Time) Session {
	return Session{
		ID:          id,
		CurrentStep: 1,
		CreatedAt:   now,
	}
}

// IsComplete reports whether every question has been answered.
func (s Session) IsComplete() bool {
	return s.CurrentStep > questions.TotalSteps
}

// Remaining is the number of questions still to be answered.
func (s Session) Remaining() int {
	if s.IsComplete() {
		return 0
	}
	return questions.TotalSteps - s.CurrentStep + 1
}

// CurrentQuestion returns the question awaiting an answer, false once complete.
func (s Session) CurrentQuestion() (questions.Question, bool) {
	return questions.At(s.CurrentStep)
}

// Record stores value for the current question and advances one step.
func (s *Session) Record(value string) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return apperrors.ErrAlreadyComplete
	}
	if !s.Answers.set(q.Field, value) {
		return apperrors.Wrapf(apperrors.ErrInternal, "unknown field %q", q.Field)
	}
	s.CurrentStep++
	return nil
}
