// Package builder drives a session through the questionnaire and compiles the
// finished answers into a soul document.
package builder

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	apperrors "github.com/Vayain/soul-builder/internal/errors"
	"github.com/Vayain/soul-builder/internal/utils"
	"github.com/Vayain/soul-builder/questions"
	"github.com/Vayain/soul-builder/sessions"
	"github.com/Vayain/soul-builder/soul"
)

// Service is the question flow engine. All state lives in the injected repo.
type Service struct {
	repo sessions.Repo
}

// NewService creates a Service backed by repo.
func NewService(repo sessions.Repo) (*Service, error) {
	if repo == nil {
		return nil, errors.Wrap(apperrors.ErrInvalidConfig, "[NewService] session repo is required")
	}
	return &Service{repo: repo}, nil
}

// Begin ensures a session exists and reports where it stands. Calling it
// again never resets progress. An empty sessionID starts a session with a
// generated id.
func (s *Service) Begin(sessionID string) Result {
	sess, created := s.repo.Create(sessionID)

	if sess.IsComplete() {
		return Result{
			Success: true,
			Message: fmt.Sprintf("%s's soul is already complete. Generate or export it to get the document.", sess.Answers.Name),
		}.withProgress(sess)
	}

	greeting := fmt.Sprintf("Welcome to Soul Builder! Answer %d questions to define your agent's soul.", questions.TotalSteps)
	if !created {
		greeting = "Welcome back! Picking up where you left off."
	}
	return Result{
		Success: true,
		Message: greeting + "\n\n" + questionLine(sess),
	}.withProgress(sess)
}

// SubmitAnswer validates rawAnswer against the current question, stores it
// and advances one step. Failed validation leaves the session untouched.
func (s *Service) SubmitAnswer(sessionID, rawAnswer string) Result {
	sess, err := s.repo.Mutate(sessionID, func(sess *sessions.Session) error {
		q, ok := sess.CurrentQuestion()
		if !ok {
			return apperrors.ErrAlreadyComplete
		}

		answer := strings.TrimSpace(rawAnswer)
		switch {
		case q.IsSkip(answer):
			answer = ""
		case answer == "" && !q.Optional:
			return apperrors.Wrapf(apperrors.ErrAnswerRequired, "question %d", q.Position)
		}
		return sess.Record(answer)
	})

	switch {
	case apperrors.Is(err, apperrors.ErrSessionNotFound):
		return noSession(sessionID)

	case apperrors.Is(err, apperrors.ErrAlreadyComplete):
		return Result{
			Success: true,
			Code:    CodeAlreadyComplete,
			Message: fmt.Sprintf("All questions are already answered for %s. Generate or export the soul document.", sess.Answers.Name),
		}.withProgress(sess)

	case apperrors.Is(err, apperrors.ErrAnswerRequired):
		r := failure(CodeValidationRequired, sessionID, "An answer is required for this question.\n\n"+questionLine(sess))
		return r.withProgress(sess)

	case err != nil:
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to record answer")
		return failure(CodeInternal, sessionID, "The answer could not be recorded.")
	}

	log.Debug().Str("session_id", sessionID).Int("step", sess.CurrentStep).Msg("answer recorded")

	if sess.IsComplete() {
		log.Info().Str("session_id", sessionID).Msg("questionnaire completed")
		return Result{
			Success: true,
			Message: fmt.Sprintf("All done! The soul of %s is ready. Generate it to compile the document, or export it to download %s.",
				sess.Answers.Name, soul.Filename),
		}.withProgress(sess)
	}

	return Result{
		Success: true,
		Message: "Got it.\n\n" + questionLine(sess),
	}.withProgress(sess)
}

// Generate compiles the soul document for a completed session.
func (s *Service) Generate(sessionID string) Result {
	sess, r, ok := s.completed(sessionID)
	if !ok {
		return r
	}

	doc := soul.Render(answerSet(sess.Answers))
	log.Info().Str("session_id", sessionID).Msg("soul generated")
	return Result{
		Success:  true,
		Message:  fmt.Sprintf("The soul of %s has been generated.", sess.Answers.Name),
		Document: utils.Ptr(doc),
	}.withProgress(sess)
}

// Export returns the same document as Generate, framed for copy or download.
// It does not depend on Generate having been called.
func (s *Service) Export(sessionID string) Result {
	sess, r, ok := s.completed(sessionID)
	if !ok {
		return r
	}

	doc := soul.Render(answerSet(sess.Answers))
	log.Info().Str("session_id", sessionID).Msg("soul exported")
	return Result{
		Success:  true,
		Message:  fmt.Sprintf("Here is %s for %s. Copy it or save it as %s.", soul.Filename, sess.Answers.Name, soul.Filename),
		Document: utils.Ptr(doc),
		Filename: utils.Ptr(soul.Filename),
	}.withProgress(sess)
}

// ActiveSessionCount returns the number of live sessions.
func (s *Service) ActiveSessionCount() int {
	return s.repo.Count()
}

// Stats returns the session store totals.
func (s *Service) Stats() sessions.Stats {
	return s.repo.Stats()
}

func (s *Service) completed(sessionID string) (sessions.Session, Result, bool) {
	sess, ok := s.repo.Get(sessionID)
	if !ok {
		return sess, noSession(sessionID), false
	}
	if !sess.IsComplete() {
		remaining := sess.Remaining()
		r := failure(CodeNotComplete, sessionID,
			fmt.Sprintf("The soul is not complete yet: %d %s remaining.", remaining, plural(remaining, "question", "questions")))
		r.RemainingSteps = utils.Ptr(remaining)
		return sess, r.withProgress(sess), false
	}
	return sess, Result{}, true
}

func noSession(sessionID string) Result {
	return failure(CodeNoSession, sessionID, "No active session found. Begin a new session to start building a soul.")
}

func questionLine(sess sessions.Session) string {
	q, ok := sess.CurrentQuestion()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Question %d of %d: %s", q.Position, questions.TotalSteps, q.Display())
}

func answerSet(a sessions.Answers) soul.AnswerSet {
	return soul.AnswerSet{
		Name:        a.Name,
		Personality: a.Personality,
		Values:      a.Values,
		Tone:        a.Tone,
		Backstory:   a.Backstory,
		Signature:   a.Signature,
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
