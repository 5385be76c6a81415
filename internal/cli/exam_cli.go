package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/scoring"
)

// ExamCLI runs a full timed quiz session in the terminal.
type ExamCLI struct {
	console
	store            *profile.Store
	showExplanations bool
	tickInterval     time.Duration
}

// NewExamCLI creates the exam runner over stdin and stdout.
func NewExamCLI(store *profile.Store, showExplanations bool) *ExamCLI {
	return &ExamCLI{
		console:          newConsole(),
		store:            store,
		showExplanations: showExplanations,
		tickInterval:     time.Second,
	}
}

const examHelp = `Commands:
  1..9       answer the current question with that option
  n / p      next / previous question
  g <num>    go to question <num>
  m          mark the current question for review
  s          submit the quiz
  q          quit without saving
  h          show this help`

// Run drives one quiz session to completion. An interrupt or quit abandons
// the session without recording anything; a submit or an expired countdown
// finishes it and folds the result into the profile.
func (cli *ExamCLI) Run(ctx context.Context, settings quiz.Settings, questions []bank.Question) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	session, err := quiz.Begin(settings, questions)
	if err != nil {
		return fmt.Errorf("quiz.Begin() > %w", err)
	}

	countdown := quiz.NewCountdown(cli.tickInterval)
	defer countdown.Stop()
	lines := cli.lines()

	if err := cli.printf("%s — %d questions, %d minutes\n%s\n\n",
		cli.bold.Sprintf("%s", settings.Subject), session.Len(), settings.DurationMinutes, examHelp); err != nil {
		return err
	}
	if err := cli.showQuestion(session); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = session.Abandon()
			return cli.printf("\nReceived interrupt signal, exiting. Nothing was recorded.\n")

		case <-countdown.C():
			result, tickErr := session.Tick()
			if tickErr != nil {
				return fmt.Errorf("session.Tick() > %w", tickErr)
			}
			if result != nil {
				countdown.Stop()
				if err := cli.printf("\n%s\n", cli.red.Sprint("Time is up. Submitting automatically.")); err != nil {
					return err
				}
				return cli.finalize(*result)
			}
			if remaining := session.Remaining(); remaining == 300 || remaining == 60 {
				if err := cli.printf("%s\n", cli.yellow.Sprintf("%s remaining", scoring.FormatDuration(remaining))); err != nil {
					return err
				}
			}

		case line, ok := <-lines:
			if !ok {
				// EOF behaves like a submit.
				result, finishErr := session.Finish()
				if finishErr != nil {
					return fmt.Errorf("session.Finish() > %w", finishErr)
				}
				return cli.finalize(result)
			}

			done, result, cmdErr := cli.handleCommand(session, parseCommand(line))
			if cmdErr != nil {
				return cmdErr
			}
			if done {
				countdown.Stop()
				if result == nil {
					return cli.printf("Quiz abandoned. Nothing was recorded.\n")
				}
				return cli.finalize(*result)
			}
		}
	}
}

func (cli *ExamCLI) handleCommand(session *quiz.Session, cmd command) (bool, *quiz.Result, error) {
	switch cmd.kind {
	case cmdAnswer:
		if err := session.Answer(session.CurrentIndex(), cmd.arg); err != nil {
			return false, nil, cli.printf("%s\n", cli.red.Sprintf("Cannot record that answer: %v", err))
		}
		if session.CurrentIndex() < session.Len()-1 {
			_ = session.Navigate(session.CurrentIndex() + 1)
		}
		return false, nil, cli.showQuestion(session)

	case cmdNext:
		_ = session.Navigate(session.CurrentIndex() + 1)
		return false, nil, cli.showQuestion(session)

	case cmdPrev:
		_ = session.Navigate(session.CurrentIndex() - 1)
		return false, nil, cli.showQuestion(session)

	case cmdGoto:
		_ = session.Navigate(cmd.arg)
		return false, nil, cli.showQuestion(session)

	case cmdMark:
		_ = session.ToggleMark(session.CurrentIndex())
		return false, nil, cli.showQuestion(session)

	case cmdSubmit:
		result, err := session.Finish()
		if err != nil {
			return false, nil, fmt.Errorf("session.Finish() > %w", err)
		}
		return true, &result, nil

	case cmdQuit:
		if err := session.Abandon(); err != nil {
			return false, nil, fmt.Errorf("session.Abandon() > %w", err)
		}
		return true, nil, nil

	case cmdHelp:
		return false, nil, cli.printf("%s\n", examHelp)
	}

	return false, nil, cli.printf("Unrecognized command, type h for help.\n")
}

func (cli *ExamCLI) showQuestion(session *quiz.Session) error {
	position := session.CurrentIndex()
	question := session.Question(position)

	marked := ""
	if question.Marked {
		marked = " " + cli.yellow.Sprint("[marked]")
	}
	header := fmt.Sprintf("\nQuestion %d/%d%s (%d answered, %s left)",
		position+1, session.Len(), marked, session.AnsweredCount(), scoring.FormatDuration(session.Remaining()))
	if err := cli.printf("%s\n%s\n", header, cli.bold.Sprintf("%s", question.Text)); err != nil {
		return err
	}

	answered := session.AnswerAt(position)
	for i, option := range question.Options {
		selected := "  "
		if i == answered {
			selected = cli.green.Sprint("> ")
		}
		if err := cli.printf("%s%d. %s\n", selected, i+1, option); err != nil {
			return err
		}
	}
	return nil
}

func (cli *ExamCLI) finalize(result quiz.Result) error {
	if err := cli.store.RecordQuizResult(result); err != nil {
		return fmt.Errorf("store.RecordQuizResult() > %w", err)
	}

	tier := scoring.PerformanceTier(result.Percentage)
	if err := cli.printf("\n%s\nScore: %d/%d (%d%%, %s)\nIncorrect: %d  Unanswered: %d  Time: %s\n",
		cli.bold.Sprint("Quiz complete"),
		result.CorrectAnswers, result.TotalQuestions, result.Percentage, tier,
		result.IncorrectAnswers, result.Unanswered, scoring.FormatDuration(result.TimeTakenSeconds)); err != nil {
		return err
	}

	if cli.showExplanations && len(result.WrongAnswers) > 0 {
		if err := cli.printf("\n%s\n", cli.bold.Sprint("Review your mistakes")); err != nil {
			return err
		}
		for _, wrong := range result.WrongAnswers {
			if err := cli.printf("❌ %s\n   Your answer: %s\n   Correct answer: %s\n   %s\n",
				wrong.Question,
				cli.red.Sprintf("%s", wrong.UserAnswer),
				cli.green.Sprintf("%s", wrong.CorrectAnswer),
				cli.italic.Sprintf("%s", wrong.Explanation)); err != nil {
				return err
			}
		}
	}

	if len(result.WrongAnswers) > 0 {
		topics := make([]string, 0, len(result.WrongAnswers))
		for _, wrong := range result.WrongAnswers {
			topics = append(topics, wrong.Topic)
		}
		if err := cli.printf("Focus areas: %v\n", scoring.TopImprovementAreas(topics, 3)); err != nil {
			return err
		}
	}

	unlocked, err := cli.store.CheckAchievements()
	if err != nil {
		return fmt.Errorf("store.CheckAchievements() > %w", err)
	}
	for _, achievement := range unlocked {
		if err := cli.printf("%s Achievement unlocked: %s — %s\n",
			achievement.Icon, cli.bold.Sprintf("%s", achievement.Name), achievement.Description); err != nil {
			return err
		}
	}
	return nil
}
