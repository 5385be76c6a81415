package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/bank"
)

// State of a session. Transitions are setup -> active -> completed; completed
// is terminal.
type State string

const (
	StateSetup     State = "setup"
	StateActive    State = "active"
	StateCompleted State = "completed"
)

// Unanswered marks a position with no recorded answer.
const Unanswered = -1

var (
	// ErrInvalidState is returned when an operation is called outside the
	// active state. Callers log and ignore it; it never ends the session.
	ErrInvalidState = errors.New("session is not active")
	// ErrAlreadyCompleted is returned by a second Finish.
	ErrAlreadyCompleted = errors.New("session already completed")
)

// Session is the mutable state of one quiz attempt. It is owned by a single
// runner; all mutation goes through its methods.
type Session struct {
	settings     Settings
	questions    []bank.Question
	answers      []int
	currentIndex int
	state        State
	startedAt    time.Time
	remaining    int
	timed        bool
	abandoned    bool
	now          func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the session's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Untimed disables the countdown; Tick becomes a no-op.
func Untimed() Option {
	return func(s *Session) {
		s.timed = false
	}
}

// Begin validates the settings and starts an active session over the given
// deck. The deck must already be selected, shuffled, and truncated to the
// requested count; Begin does not reorder it.
func Begin(settings Settings, questions []bank.Question, opts ...Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.New("cannot begin a session with no questions")
	}

	session := &Session{
		settings:  settings,
		questions: append([]bank.Question(nil), questions...),
		answers:   make([]int, len(questions)),
		state:     StateSetup,
		timed:     true,
		now:       time.Now,
	}
	for i := range session.answers {
		session.answers[i] = Unanswered
	}
	for _, opt := range opts {
		opt(session)
	}

	session.state = StateActive
	session.startedAt = session.now()
	session.remaining = settings.DurationMinutes * 60
	return session, nil
}

// Answer records the selected option for a question position, overwriting any
// prior answer there. It does not advance the current position.
func (s *Session) Answer(position, option int) error {
	if s.state != StateActive {
		return ErrInvalidState
	}
	if position < 0 || position >= len(s.questions) {
		return fmt.Errorf("position %d out of range [0, %d)", position, len(s.questions))
	}
	if option < 0 || option >= len(s.questions[position].Options) {
		return fmt.Errorf("option %d out of range for question %d", option, position)
	}

	s.answers[position] = option
	return nil
}

// Navigate moves the current position. Out-of-range positions are ignored.
func (s *Session) Navigate(position int) error {
	if s.state != StateActive {
		return ErrInvalidState
	}
	if position < 0 || position >= len(s.questions) {
		return nil
	}
	s.currentIndex = position
	return nil
}

// ToggleMark flips the for-review flag on a question. The flag only affects
// navigation display, never scoring. Out-of-range positions are ignored.
func (s *Session) ToggleMark(position int) error {
	if s.state != StateActive {
		return ErrInvalidState
	}
	if position < 0 || position >= len(s.questions) {
		return nil
	}
	s.questions[position].Marked = !s.questions[position].Marked
	return nil
}

// Tick advances the countdown by one second. When time runs out the session
// finishes itself and the forced result is returned; unanswered questions
// stay unanswered. Tick is a no-op for untimed sessions.
func (s *Session) Tick() (*Result, error) {
	if s.state != StateActive {
		return nil, ErrInvalidState
	}
	if !s.timed {
		return nil, nil
	}

	s.remaining--
	if s.remaining > 0 {
		return nil, nil
	}

	result, err := s.Finish()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Finish completes the session and derives its result. Calling Finish on an
// already-completed session is an error.
func (s *Session) Finish() (Result, error) {
	if s.state == StateCompleted {
		return Result{}, ErrAlreadyCompleted
	}
	if s.state != StateActive {
		return Result{}, ErrInvalidState
	}

	s.state = StateCompleted
	finishedAt := s.now()
	// Wall clock, not the countdown: the two drift when the host suspends
	// the process, and the wall clock is what the user experienced.
	return buildResult(s.settings.Subject, s.questions, s.answers, finishedAt.Sub(s.startedAt), finishedAt), nil
}

// Abandon terminates the session without producing a result. Nothing is
// committed to the profile for an abandoned attempt.
func (s *Session) Abandon() error {
	if s.state != StateActive {
		return ErrInvalidState
	}
	s.state = StateCompleted
	s.abandoned = true
	return nil
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Settings returns the settings the session was started with.
func (s *Session) Settings() Settings {
	return s.settings
}

// Len returns the deck size.
func (s *Session) Len() int {
	return len(s.questions)
}

// CurrentIndex returns the current question position.
func (s *Session) CurrentIndex() int {
	return s.currentIndex
}

// Question returns the question at a position.
func (s *Session) Question(position int) bank.Question {
	return s.questions[position]
}

// AnswerAt returns the recorded answer at a position, or Unanswered.
func (s *Session) AnswerAt(position int) int {
	return s.answers[position]
}

// AnsweredCount returns how many questions have an answer recorded.
func (s *Session) AnsweredCount() int {
	count := 0
	for _, answer := range s.answers {
		if answer != Unanswered {
			count++
		}
	}
	return count
}

// Remaining returns the countdown seconds left; 0 for untimed sessions.
func (s *Session) Remaining() int {
	if !s.timed {
		return 0
	}
	return s.remaining
}

// Timed reports whether the session runs against the countdown.
func (s *Session) Timed() bool {
	return s.timed
}
