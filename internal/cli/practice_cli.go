package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/scoring"
)

// PracticeCLI runs an untimed one-question-at-a-time session with instant
// feedback. Each answer is committed to the profile as it happens, so quitting
// mid-deck loses nothing.
type PracticeCLI struct {
	console
	store *profile.Store
}

// PracticeOptions configure a practice run.
type PracticeOptions struct {
	Subject          string
	ShowExplanations bool
	// SecondsPerQuestion puts each question on its own countdown; 0 leaves
	// the session untimed.
	SecondsPerQuestion int
	// ReviewIDs marks which deck questions came from the wrong-answer
	// ledger, so the session can flag them.
	ReviewIDs map[string]struct{}
}

// NewPracticeCLI creates the practice runner over stdin and stdout.
func NewPracticeCLI(store *profile.Store) *PracticeCLI {
	return &PracticeCLI{
		console: newConsole(),
		store:   store,
	}
}

// Run walks the deck, asking each question and recording each answer. It
// returns after the deck is exhausted, the user quits, or the context is
// cancelled.
func (cli *PracticeCLI) Run(ctx context.Context, deck []bank.Question, opts PracticeOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	lines := cli.lines()

	if err := cli.printf("%s — %d questions. Answer with the option number, s to skip, q to quit.\n",
		cli.bold.Sprintf("%s", opts.Subject), len(deck)); err != nil {
		return err
	}

	answered, correct := 0, 0
	for i, question := range deck {
		if err := cli.showPracticeQuestion(i, len(deck), question, opts); err != nil {
			return err
		}

		selected, quit, err := cli.readAnswer(ctx, lines, question, opts.SecondsPerQuestion)
		if err != nil {
			return err
		}
		if quit {
			break
		}
		if selected == quiz.Unanswered {
			if err := cli.printf("Skipped.\n"); err != nil {
				return err
			}
			continue
		}

		answered++
		isCorrect := selected == question.CorrectAnswer
		if isCorrect {
			correct++
		}
		if err := cli.showFeedback(question, selected, isCorrect, opts.ShowExplanations); err != nil {
			return err
		}

		wrong := quiz.WrongAnswer{
			QuestionID:    question.ID,
			Question:      question.Text,
			CorrectAnswer: question.Options[question.CorrectAnswer],
			UserAnswer:    question.Options[selected],
			Explanation:   question.Explanation,
			Subject:       opts.Subject,
			Topic:         question.Topic,
		}
		if err := cli.store.RecordPracticeAnswer(opts.Subject, wrong, isCorrect, question.Topic); err != nil {
			return fmt.Errorf("store.RecordPracticeAnswer() > %w", err)
		}
		if isCorrect {
			if _, reviewed := opts.ReviewIDs[question.ID]; reviewed {
				if err := cli.store.MarkReviewed(question.ID); err != nil {
					return fmt.Errorf("store.MarkReviewed() > %w", err)
				}
			}
		}
	}

	if answered == 0 {
		return cli.printf("\nPractice session ended.\n")
	}
	percentage := scoring.Percentage(correct, answered)
	return cli.printf("\nPractice session ended: %d/%d correct (%d%%, %s)\n",
		correct, answered, percentage, scoring.PerformanceTier(percentage))
}

func (cli *PracticeCLI) showPracticeQuestion(index, total int, question bank.Question, opts PracticeOptions) error {
	review := ""
	if _, ok := opts.ReviewIDs[question.ID]; ok {
		review = " " + cli.yellow.Sprint("[review]")
	}
	if err := cli.printf("\nQuestion %d/%d%s (%s)\n%s\n",
		index+1, total, review, question.Topic, cli.bold.Sprintf("%s", question.Text)); err != nil {
		return err
	}
	for i, option := range question.Options {
		if err := cli.printf("  %d. %s\n", i+1, option); err != nil {
			return err
		}
	}
	if opts.SecondsPerQuestion > 0 {
		return cli.printf("%s\n", cli.yellow.Sprintf("%s for this question", scoring.FormatDuration(opts.SecondsPerQuestion)))
	}
	return nil
}

// readAnswer waits for a valid option, a skip, a quit, the per-question
// countdown, or cancellation. A timeout counts as a skip.
func (cli *PracticeCLI) readAnswer(ctx context.Context, lines <-chan string, question bank.Question, timeoutSeconds int) (int, bool, error) {
	var timeout <-chan time.Time
	var countdown *quiz.Countdown
	if timeoutSeconds > 0 {
		countdown = quiz.NewCountdown(time.Duration(timeoutSeconds) * time.Second)
		defer countdown.Stop()
		timeout = countdown.C()
	}

	for {
		select {
		case <-ctx.Done():
			return quiz.Unanswered, true, cli.printf("\nReceived interrupt signal, exiting...\n")
		case <-timeout:
			if err := cli.printf("%s\n", cli.red.Sprint("Time is up for this question.")); err != nil {
				return quiz.Unanswered, true, err
			}
			return quiz.Unanswered, false, nil
		case line, ok := <-lines:
			if !ok {
				return quiz.Unanswered, true, nil
			}
			switch line {
			case "q", "quit", "exit":
				return quiz.Unanswered, true, nil
			case "s", "skip", "":
				return quiz.Unanswered, false, nil
			}
			option, err := strconv.Atoi(line)
			if err != nil || option < 1 || option > len(question.Options) {
				if err := cli.printf("Enter an option between 1 and %d, s to skip, or q to quit.\n", len(question.Options)); err != nil {
					return quiz.Unanswered, true, err
				}
				continue
			}
			return option - 1, false, nil
		}
	}
}

func (cli *PracticeCLI) showFeedback(question bank.Question, selected int, isCorrect, showExplanations bool) error {
	if isCorrect {
		if err := cli.printf("✅ %s\n", cli.green.Sprint("Correct!")); err != nil {
			return err
		}
	} else {
		if err := cli.printf("❌ %s The correct answer is %s\n",
			cli.red.Sprint("Wrong."),
			cli.bold.Sprintf("%s", question.Options[question.CorrectAnswer])); err != nil {
			return err
		}
	}
	if showExplanations && question.Explanation != "" {
		return cli.printf("   %s\n", cli.italic.Sprintf("%s", question.Explanation))
	}
	return nil
}
