package entities

// AnswerNone marks a question slot the user has not answered yet.
const AnswerNone = -1

// QuizSession is the mutable per-user record of an in-progress quiz.
// A user has at most one session at a time; it is created when a category is
// chosen and destroyed when the quiz finishes or the user resets.
type QuizSession struct {
	Category        string     // question repository category key
	Questions       []Question // session-private shuffled copy of the category's questions
	Current         int        // cursor into Questions, always within range
	Answers         []int      // selected option per slot, AnswerNone until answered; write-once
	Score           int        // count of correct answers, kept in sync with Answers
	ActiveMessageID int        // message currently displaying the active question, 0 if none
	ManualNav       bool       // last move came from an explicit Back/Next press
}

// NewQuizSession creates a session positioned at the first question with all
// slots unanswered. The questions slice is owned by the session.
func NewQuizSession(category string, questions []Question) *QuizSession {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = AnswerNone
	}

	return &QuizSession{
		Category:  category,
		Questions: questions,
		Answers:   answers,
	}
}

// Clone returns an independent copy of the session. The Questions slice is
// shared: it is never mutated after the session is created.
func (s *QuizSession) Clone() *QuizSession {
	c := *s
	c.Answers = append([]int(nil), s.Answers...)
	return &c
}

// Total returns the number of questions in the session.
func (s *QuizSession) Total() int {
	return len(s.Questions)
}

// Question returns the question at the cursor.
func (s *QuizSession) Question() Question {
	return s.Questions[s.Current]
}

// Answered reports whether the slot at index i has been answered.
func (s *QuizSession) Answered(i int) bool {
	return i >= 0 && i < len(s.Answers) && s.Answers[i] != AnswerNone
}

// OnLastQuestion reports whether the cursor is at the final question.
func (s *QuizSession) OnLastQuestion() bool {
	return s.Current == len(s.Questions)-1
}

// CategoryResult is a user's recorded score for one finished category quiz.
// Unlike the session itself it survives session teardown.
type CategoryResult struct {
	Score int
	Total int
}
