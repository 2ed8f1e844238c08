package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/qaboard/internal/client/models"
)

// List prints every question, newest first as the server returns them.
func (a *App) List(ctx context.Context) error {
	qs, err := a.questionService.List(ctx)
	if err != nil {
		return err
	}
	if len(qs) == 0 {
		printlnFn("No questions yet")
		return nil
	}
	for i := range qs {
		printlnFn(summary(&qs[i]))
	}
	return nil
}

// Show prints one question with its responses.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter question ID")
	if err != nil {
		return err
	}

	q, err := a.questionService.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printQuestion(q)
	return nil
}

// Ask posts a question. The body is taken from the arguments, or read as
// multi-line text when there are none.
func (a *App) Ask(ctx context.Context, args []string) error {
	body, err := a.bodyOrPrompt(args, "Enter your question")
	if err != nil {
		return err
	}

	q, err := a.questionService.Ask(ctx, body)
	if err != nil {
		return err
	}
	printlnFn("Posted " + q.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter question ID")
	if err != nil {
		return err
	}

	msg, err := a.questionService.Delete(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}

// Respond answers a question: respond <questionId> [body...].
func (a *App) Respond(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter question ID")
	if err != nil {
		return err
	}
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	body, err := a.bodyOrPrompt(rest, "Enter your response")
	if err != nil {
		return err
	}

	q, err := a.questionService.Respond(ctx, id, body)
	if err != nil {
		return err
	}
	a.printQuestion(q)
	return nil
}

// Unrespond deletes one of the caller's responses: unrespond <questionId> <responseId>.
func (a *App) Unrespond(ctx context.Context, args []string) error {
	qid, err := a.argOrPrompt(args, 0, "Enter question ID")
	if err != nil {
		return err
	}
	rid, err := a.argOrPrompt(args, 1, "Enter response ID")
	if err != nil {
		return err
	}

	q, err := a.questionService.Unrespond(ctx, qid, rid)
	if err != nil {
		return err
	}
	a.printQuestion(q)
	return nil
}

// Favorite toggles the caller's favorite on a question.
func (a *App) Favorite(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter question ID")
	if err != nil {
		return err
	}

	q, err := a.questionService.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	if q.FavoritedBy(a.currentUserName()) {
		printlnFn(fmt.Sprintf("Added to favorites (%d)", q.FavoriteCount))
	} else {
		printlnFn(fmt.Sprintf("Removed from favorites (%d)", q.FavoriteCount))
	}
	return nil
}

func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) bodyOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return getMultiline(a.reader, prompt, a.out)
}

var getMultiline = GetMultiline

func summary(q *models.Question) string {
	return fmt.Sprintf("[%s] %s (%s) responses: %d, favorites: %d\n    %s",
		q.ID, q.UserName, q.CreatedAt, q.ResponseCount, q.FavoriteCount, firstLine(q.Body))
}

func (a *App) printQuestion(q *models.Question) {
	printlnFn(summary(q))
	if len(q.Body) != len(firstLine(q.Body)) {
		printlnFn(q.Body)
	}
	for _, r := range q.Responses {
		printlnFn(fmt.Sprintf("  - [%s] %s (%s): %s", r.ID, r.UserName, r.CreatedAt, r.Body))
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
