package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// QuizMode selects the pool prompts are drawn from.
type QuizMode string

const (
	ModeLearned QuizMode = "learned" // only words the user marked as learned
	ModeFull    QuizMode = "full"    // the whole dataset
)

// ParseQuizMode converts raw input into a QuizMode.
func ParseQuizMode(s string) (QuizMode, bool) {
	switch QuizMode(s) {
	case ModeLearned, ModeFull:
		return QuizMode(s), true
	default:
		return "", false
	}
}

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// Performance tiers reported with results.
type Tier string

const (
	TierExcellent     Tier = "excellent"
	TierGood          Tier = "good"
	TierNeedsPractice Tier = "needs-practice"
)

// TierFor maps a percentage to its performance tier.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 80:
		return TierExcellent
	case percentage >= 60:
		return TierGood
	default:
		return TierNeedsPractice
	}
}

// WrongAnswer records a missed question.
type WrongAnswer struct {
	WordID         string
	CorrectMeaning string
	ChosenMeaning  string
}

// Result summarizes a finished quiz session.
type Result struct {
	Correct      int
	Wrong        int
	Total        int
	Percentage   int
	Tier         Tier
	WrongAnswers []WrongAnswer
}

// QuizSession represents one quiz attempt.
// It tracks the questions, the current position, the score and the answers
// given so far. Sessions are held in memory only.
type QuizSession struct {
	ID           uuid.UUID     // unique session ID
	UserID       int64         // user who started the quiz
	Mode         QuizMode      // learned or full
	Questions    []Question    // ordered questions
	Position     int           // 0-based index of the current question
	Score        int           // number of correct answers so far
	WrongAnswers []WrongAnswer // missed questions in answer order
	Status       string        // active or completed
	StartedAt    time.Time     // timestamp when the quiz started
	CompletedAt  *time.Time    // timestamp when the quiz was completed (nullable)

	answered    bool // current question already answered
	lastCorrect bool // outcome of the current question's answer
}

// NewQuizSession creates an active session positioned at the first question.
func NewQuizSession(userID int64, mode QuizMode, questions []Question) *QuizSession {
	return &QuizSession{
		ID:        uuid.New(),
		UserID:    userID,
		Mode:      mode,
		Questions: questions,
		Status:    SessionActive,
		StartedAt: time.Now(),
	}
}

// Total returns the number of questions.
func (qs *QuizSession) Total() int {
	return len(qs.Questions)
}

// Done reports whether every question has been passed.
func (qs *QuizSession) Done() bool {
	return qs.Position >= len(qs.Questions)
}

// Current returns the question at the current position, or nil when done.
func (qs *QuizSession) Current() *Question {
	if qs.Done() {
		return nil
	}
	return &qs.Questions[qs.Position]
}

// Answered reports whether the current question has been answered.
func (qs *QuizSession) Answered() bool {
	return qs.answered
}

// Answer records the selected meaning for the current question.
// Only the first answer per question counts: later calls change nothing and
// return the recorded outcome with recorded == false.
func (qs *QuizSession) Answer(selectedMeaning string) (correct bool, recorded bool) {
	q := qs.Current()
	if q == nil {
		return false, false
	}
	if qs.answered {
		return qs.lastCorrect, false
	}

	qs.answered = true
	qs.lastCorrect = q.IsCorrect(selectedMeaning)

	if qs.lastCorrect {
		qs.Score++
	} else {
		qs.WrongAnswers = append(qs.WrongAnswers, WrongAnswer{
			WordID:         q.Prompt.ID,
			CorrectMeaning: q.CorrectAnswer,
			ChosenMeaning:  selectedMeaning,
		})
	}

	return qs.lastCorrect, true
}

// Advance moves to the next question and reports whether the session is finished.
// The session is completed when the last question is passed.
func (qs *QuizSession) Advance() bool {
	if qs.Done() {
		return true
	}

	qs.Position++
	qs.answered = false
	qs.lastCorrect = false

	if qs.Done() {
		qs.Complete()
		return true
	}
	return false
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.Status = SessionCompleted
	now := time.Now()
	qs.CompletedAt = &now
}

// Result computes the score report.
func (qs *QuizSession) Result() Result {
	total := qs.Total()

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(100 * float64(qs.Score) / float64(total)))
	}

	wrong := make([]WrongAnswer, len(qs.WrongAnswers))
	copy(wrong, qs.WrongAnswers)

	return Result{
		Correct:      qs.Score,
		Wrong:        total - qs.Score,
		Total:        total,
		Percentage:   percentage,
		Tier:         TierFor(percentage),
		WrongAnswers: wrong,
	}
}
