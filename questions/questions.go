// Package questions holds the fixed, ordered questionnaire used to build a soul.
package questions

// Field identifies which answer slot a question fills.
type Field string

const (
	FieldName        Field = "name"
	FieldPersonality Field = "personality"
	FieldValues      Field = "values"
	FieldTone        Field = "tone"
	FieldBackstory   Field = "backstory"
	FieldSignature   Field = "signature"
)

// SkipSentinel may be answered to an optional question to leave it blank.
const SkipSentinel = "skip"

// Question is one step of the questionnaire.
type Question struct {
	Position int    // 1-based
	Field    Field  // answer slot filled by this question
	Prompt   string // text shown to the user
	Optional bool   // accepts SkipSentinel
}

var all = [...]Question{
	{
		Position: 1,
		Field:    FieldName,
		Prompt:   "What is your agent's name?",
	},
	{
		Position: 2,
		Field:    FieldPersonality,
		Prompt:   "Describe your agent's personality in a few words (e.g. curious, witty, patient).",
	},
	{
		Position: 3,
		Field:    FieldValues,
		Prompt:   "What core values guide your agent? (e.g. honesty, kindness, craftsmanship)",
	},
	{
		Position: 4,
		Field:    FieldTone,
		Prompt:   "How should your agent communicate? Describe its tone and style.",
	},
	{
		Position: 5,
		Field:    FieldBackstory,
		Prompt:   "Tell your agent's backstory. Where does it come from and what shaped it?",
	},
	{
		Position: 6,
		Field:    FieldSignature,
		Prompt:   "Does your agent have a signature phrase or sign-off?",
		Optional: true,
	},
}

// TotalSteps is the number of questions in the questionnaire.
const TotalSteps = len(all)

// At returns the question at the 1-based step.
func At(step int) (Question, bool) {
	if step < 1 || step > TotalSteps {
		return Question{}, false
	}
	return all[step-1], true
}

// All returns a copy of the ordered question list.
func All() []Question {
	out := make([]Question, TotalSteps)
	copy(out, all[:])
	return out
}

// IsSkip reports whether answer is the skip sentinel for q. Only optional
// questions can be skipped; for required ones "skip" is a literal answer.
func (q Question) IsSkip(answer string) bool {
	return q.Optional && fold(answer) == fold(SkipSentinel)
}

// Display renders the prompt with the skip hint for optional questions.
func (q Question) Display() string {
	if q.Optional {
		return q.Prompt + ` (optional, reply "skip" to leave it blank)`
	}
	return q.Prompt
}
