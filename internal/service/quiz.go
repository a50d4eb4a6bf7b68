package service

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
)

type QuestionSource interface {
	Get(category string) ([]entities.Question, error)
	Categories() []string
}

type SessionStore interface {
	Get(userID int64) *entities.QuizSession
	Set(userID int64, session *entities.QuizSession)
	Clear(userID int64)
}

type ResultStore interface {
	Get(userID int64) map[string]entities.CategoryResult
	Set(userID int64, category string, res entities.CategoryResult)
}

var (
	ErrNoSession       = errors.New("no active quiz session")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidOption   = errors.New("selected option out of range")
	ErrFirstQuestion   = errors.New("already at the first question")
	ErrAnswerFirst     = errors.New("current question not answered yet")
)

// AnswerOutcome describes a recorded answer.
type AnswerOutcome struct {
	Correct       bool
	CorrectOption string
	Session       *entities.QuizSession
}

// Summary describes a finished quiz. ActiveMessageID is the message that was
// displaying the last question; the session it lived on is gone by the time
// the summary is rendered, so it travels here for tidy-up.
type Summary struct {
	Category        string
	Score           int
	Total           int
	Title           string
	ActiveMessageID int
}

// QuizEngine owns all quiz session transitions: start, answer, back/next
// navigation and completion. Button presses can arrive out of order and
// duplicated, and the auto-advance timer fires on its own goroutine, so every
// transition re-checks its guards under the engine lock immediately before
// mutating; answer slots are write-once. Sessions never leave the engine:
// every method returns an independent snapshot, and the active question
// message ID is recorded through SetActiveMessage/ClearActiveMessage under
// the same lock.
type QuizEngine struct {
	mu        sync.Mutex
	questions QuestionSource
	sessions  SessionStore
	results   ResultStore
	logger    *zap.Logger
}

// NewQuizEngine creates a QuizEngine.
func NewQuizEngine(
	questions QuestionSource,
	sessions SessionStore,
	results ResultStore,
	logger *zap.Logger,
) *QuizEngine {
	return &QuizEngine{
		questions: questions,
		sessions:  sessions,
		results:   results,
		logger:    logger,
	}
}

// Start begins a new quiz for the category, replacing any session the user
// already has. The category's questions are shuffled once; the order is then
// fixed for the whole session.
func (e *QuizEngine) Start(userID int64, category string) (*entities.QuizSession, error) {
	questions, err := e.questions.Get(category)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	session := entities.NewQuizSession(category, shuffleQuestions(questions))
	e.sessions.Set(userID, session)

	e.logger.Debug("quiz started",
		zap.Int64("user_id", userID),
		zap.String("category", category),
		zap.Int("total", session.Total()),
	)

	return session.Clone(), nil
}

// Answer records the selected option for the current question. A slot is
// write-once: a duplicate press for an already answered slot returns
// ErrAlreadyAnswered and changes nothing.
func (e *QuizEngine) Answer(userID int64, selected int) (*AnswerOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.sessions.Get(userID)
	if session == nil {
		return nil, ErrNoSession
	}

	question := session.Question()
	if selected < 0 || selected >= len(question.Options) {
		return nil, ErrInvalidOption
	}
	if session.Answered(session.Current) {
		return nil, ErrAlreadyAnswered
	}

	session.Answers[session.Current] = selected
	session.ManualNav = false

	correct := selected == question.CorrectIndex
	if correct {
		session.Score++
	}

	return &AnswerOutcome{
		Correct:       correct,
		CorrectOption: question.Options[question.CorrectIndex],
		Session:       session.Clone(),
	}, nil
}

// Back moves the cursor to the previous question. Navigating back is always
// allowed except at the first question.
func (e *QuizEngine) Back(userID int64) (*entities.QuizSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.sessions.Get(userID)
	if session == nil {
		return nil, ErrNoSession
	}
	if session.Current == 0 {
		return nil, ErrFirstQuestion
	}

	session.Current--
	session.ManualNav = true
	return session.Clone(), nil
}

// Next moves the cursor forward, or finishes the quiz when the cursor is on
// the last question. It is rejected while the current slot is unanswered.
// On completion the session is destroyed, the result is recorded and a
// Summary is returned instead of a session.
func (e *QuizEngine) Next(userID int64, manual bool) (*entities.QuizSession, *Summary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.sessions.Get(userID)
	if session == nil {
		return nil, nil, ErrNoSession
	}
	if !session.Answered(session.Current) {
		return nil, nil, ErrAnswerFirst
	}

	if session.OnLastQuestion() {
		return nil, e.finish(userID, session), nil
	}

	session.Current++
	session.ManualNav = manual
	return session.Clone(), nil, nil
}

// AutoNext advances past an answered question after the reveal delay. It is a
// no-op unless the session still exists, is still at the given index and that
// slot is answered — a stale timer must not touch a session that has moved
// on. The last question is never auto-finished.
func (e *QuizEngine) AutoNext(userID int64, index int) (*entities.QuizSession, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.sessions.Get(userID)
	if session == nil || session.Current != index || !session.Answered(index) {
		return nil, false
	}
	if session.OnLastQuestion() {
		return nil, false
	}

	session.Current++
	session.ManualNav = false
	return session.Clone(), true
}

// finish records the result, tears the session down and builds the summary.
// Caller must hold e.mu.
func (e *QuizEngine) finish(userID int64, session *entities.QuizSession) *Summary {
	summary := &Summary{
		Category:        session.Category,
		Score:           session.Score,
		Total:           session.Total(),
		Title:           TitleForScore(session.Score),
		ActiveMessageID: session.ActiveMessageID,
	}

	e.results.Set(userID, session.Category, entities.CategoryResult{
		Score: summary.Score,
		Total: summary.Total,
	})
	e.sessions.Clear(userID)

	e.logger.Debug("quiz finished",
		zap.Int64("user_id", userID),
		zap.String("category", summary.Category),
		zap.Int("score", summary.Score),
		zap.Int("total", summary.Total),
	)

	return summary
}

// Session returns a snapshot of the user's active session, or nil.
func (e *QuizEngine) Session(userID int64) *entities.QuizSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.sessions.Get(userID)
	if session == nil {
		return nil
	}
	return session.Clone()
}

// SetActiveMessage records the message currently displaying the user's
// question. The record is rejected when the session is gone or the cursor has
// left index since the caller rendered, so a concurrent render for another
// slot is never overwritten by a stale one.
func (e *QuizEngine) SetActiveMessage(userID int64, index, messageID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.sessions.Get(userID)
	if session == nil || session.Current != index {
		return false
	}

	session.ActiveMessageID = messageID
	return true
}

// ClearActiveMessage forgets the active question message and returns its ID,
// or 0 when there was none.
func (e *QuizEngine) ClearActiveMessage(userID int64) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.sessions.Get(userID)
	if session == nil {
		return 0
	}

	id := session.ActiveMessageID
	session.ActiveMessageID = 0
	return id
}

// Reset destroys the user's active session, if any. Recorded results survive.
func (e *QuizEngine) Reset(userID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions.Clear(userID)
}

// Results returns the user's recorded per-category results.
func (e *QuizEngine) Results(userID int64) map[string]entities.CategoryResult {
	return e.results.Get(userID)
}

// Categories returns the known category keys in menu order.
func (e *QuizEngine) Categories() []string {
	return e.questions.Categories()
}
