package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

var (
	ErrInvalidState = errors.New("operation not allowed in current exam state")
	ErrNotAnswered  = errors.New("current question has not been answered")
)

// ExamState is a state of the exam flow.
type ExamState int

const (
	StateModeSelect ExamState = iota
	StateInProgress
	StateResults
)

func (s ExamState) String() string {
	switch s {
	case StateModeSelect:
		return "mode_select"
	case StateInProgress:
		return "in_progress"
	case StateResults:
		return "results"
	default:
		return fmt.Sprintf("ExamState(%d)", int(s))
	}
}

// AnswerOutcome describes the effect of Answer.
type AnswerOutcome struct {
	Correct       bool   // recorded answer was correct
	CorrectAnswer string // meaning of the prompt
	Recorded      bool   // false when the question had already been answered
	Last          bool   // the question is the last one
}

// ExamKey identifies an exam: one per user in each chat.
type ExamKey struct {
	ChatID int64
	UserID int64
}

// Exam drives one user's quiz: ModeSelect -> InProgress -> Results, and back
// to ModeSelect on Restart. An Exam is not safe for concurrent use; each chat
// owns its own.
type Exam struct {
	quiz    QuizGenerator
	userID  int64
	state   ExamState
	session *entities.QuizSession
}

// NewExam creates an exam waiting for a mode.
func NewExam(quiz QuizGenerator, userID int64) *Exam {
	return &Exam{
		quiz:   quiz,
		userID: userID,
		state:  StateModeSelect,
	}
}

// UserID returns the owner of the exam.
func (e *Exam) UserID() int64 {
	return e.userID
}

func (e *Exam) State() ExamState {
	return e.state
}

// Session returns the running or finished session, nil in ModeSelect.
func (e *Exam) Session() *entities.QuizSession {
	return e.session
}

// Start generates questions for mode and enters InProgress.
// On error the exam stays in ModeSelect and no session is created.
func (e *Exam) Start(ctx context.Context, mode entities.QuizMode) error {
	if e.state != StateModeSelect {
		return fmt.Errorf("start in %s: %w", e.state, ErrInvalidState)
	}

	questions, err := e.quiz.GenerateQuiz(ctx, e.userID, mode)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrInsufficientWords
	}

	e.session = entities.NewQuizSession(e.userID, mode, questions)
	e.state = StateInProgress

	return nil
}

// Current returns the current question and its 1-based number.
func (e *Exam) Current() (*entities.Question, int, error) {
	if e.state != StateInProgress {
		return nil, 0, fmt.Errorf("current in %s: %w", e.state, ErrInvalidState)
	}
	return e.session.Current(), e.session.Position + 1, nil
}

// Answer checks the selected meaning against the current question.
// A question can be answered once; later calls report the first outcome
// with Recorded == false. Answer never advances.
func (e *Exam) Answer(selectedMeaning string) (AnswerOutcome, error) {
	if e.state != StateInProgress {
		return AnswerOutcome{}, fmt.Errorf("answer in %s: %w", e.state, ErrInvalidState)
	}

	q := e.session.Current()
	correct, recorded := e.session.Answer(selectedMeaning)

	return AnswerOutcome{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Recorded:      recorded,
		Last:          e.session.Position == e.session.Total()-1,
	}, nil
}

// Advance moves past an answered question and reports whether the exam
// reached Results.
func (e *Exam) Advance() (bool, error) {
	if e.state != StateInProgress {
		return false, fmt.Errorf("advance in %s: %w", e.state, ErrInvalidState)
	}
	if !e.session.Answered() {
		return false, ErrNotAnswered
	}

	if e.session.Advance() {
		e.state = StateResults
		return true, nil
	}
	return false, nil
}

// Results returns the score report of a finished exam.
func (e *Exam) Results() (entities.Result, error) {
	if e.state != StateResults {
		return entities.Result{}, fmt.Errorf("results in %s: %w", e.state, ErrInvalidState)
	}
	return e.session.Result(), nil
}

// Restart discards the session and waits for a new mode.
func (e *Exam) Restart() {
	e.session = nil
	e.state = StateModeSelect
}
