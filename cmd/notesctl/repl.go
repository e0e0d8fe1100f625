package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ferdiebergado/jobnotes/internal/client"
	"github.com/ferdiebergado/jobnotes/internal/note"
)

const requestTimeout = 10 * time.Second

// terminal is the part of *liner.State used by the REPL.
type terminal interface {
	Prompt(prompt string) (string, error)
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	PasswordPrompt(prompt string) (string, error)
	AppendHistory(item string)
}

// REPL is the interactive command loop.
type REPL struct {
	client *client.Client
	term   terminal
	out    io.Writer
}

func (r *REPL) Run() error {
	fmt.Fprintln(r.out, "notesctl - Recent Job Notes")
	fmt.Fprintln(r.out, "Type 'help' for available commands.")

	for {
		line, err := r.term.Prompt("notes> ")
		if err != nil {
			if isAbort(err) {
				fmt.Fprintln(r.out, "\nBye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.term.AppendHistory(line)

		if quit := r.exec(line); quit {
			fmt.Fprintln(r.out, "Bye!")
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (r *REPL) exec(line string) bool {
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		r.printHelp()
	case "ls", "list":
		r.cmdList()
	case "add", "new":
		r.cmdAdd()
	case "show", "get":
		r.withID(args, r.cmdShow)
	case "edit":
		r.withID(args, r.cmdEdit)
	case "rm", "del", "delete":
		r.withID(args, r.cmdRemove)
	case "unlock":
		r.cmdUnlock()
	default:
		fmt.Fprintf(r.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, `Commands:
  ls               List all notes
  add              Create a note
  show <id>        Show one note
  edit <id>        Edit the title and body of a note
  rm <id>          Delete a note
  unlock           Exchange the condition text for an access token
  help             Show this help
  exit / quit / q  Exit`)
}

func (r *REPL) withID(args []string, fn func(id string)) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: <command> <id>")
		return
	}
	fn(args[0])
}

func (r *REPL) report(err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(r.out, "Note not found.")
	case errors.As(err, &apiErr):
		fmt.Fprintf(r.out, "Error: %s\n", apiErr.Message)
		for field, msg := range apiErr.Errors {
			fmt.Fprintf(r.out, "  %s: %s\n", field, msg)
		}
		if apiErr.StatusCode == http.StatusUnauthorized {
			fmt.Fprintln(r.out, "Run 'unlock' first.")
		}
	default:
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *REPL) printNote(n note.Note) {
	fmt.Fprintf(r.out, "id:    %s\ntitle: %s\nbody:  %s\n", n.ID, n.Title, n.Body)
}

func (r *REPL) cmdList() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	notes, err := r.client.List(ctx)
	if err != nil {
		r.report(err)
		return
	}
	if len(notes) == 0 {
		fmt.Fprintln(r.out, "(no notes)")
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tBODY")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Title, n.Body)
	}
	_ = tw.Flush()
}

func (r *REPL) cmdAdd() {
	title, err := r.term.Prompt("Title: ")
	if err != nil {
		return
	}
	body, err := r.term.Prompt("Body: ")
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	n, err := r.client.Create(ctx, strings.TrimSpace(title), strings.TrimSpace(body))
	if err != nil {
		r.report(err)
		return
	}
	fmt.Fprintln(r.out, "Note created successfully.")
	r.printNote(n)
}

func (r *REPL) cmdShow(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	n, err := r.client.Get(ctx, id)
	if err != nil {
		r.report(err)
		return
	}
	r.printNote(n)
}

func (r *REPL) cmdEdit(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	current, err := r.client.Get(ctx, id)
	if err != nil {
		r.report(err)
		return
	}

	title, err := r.term.PromptWithSuggestion("Title: ", current.Title, -1)
	if err != nil {
		return
	}
	body, err := r.term.PromptWithSuggestion("Body: ", current.Body, -1)
	if err != nil {
		return
	}

	var newTitle, newBody *string
	if title = strings.TrimSpace(title); title != current.Title {
		newTitle = &title
	}
	if body = strings.TrimSpace(body); body != current.Body {
		newBody = &body
	}
	if newTitle == nil && newBody == nil {
		fmt.Fprintln(r.out, "Nothing changed.")
		return
	}

	n, err := r.client.Update(ctx, id, newTitle, newBody)
	if err != nil {
		r.report(err)
		return
	}
	fmt.Fprintln(r.out, "Note updated.")
	r.printNote(n)
}

func (r *REPL) cmdRemove(id string) {
	answer, err := r.term.Prompt("Delete this note? (yes/no): ")
	if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		fmt.Fprintln(r.out, "Cancelled.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := r.client.Delete(ctx, id); err != nil {
		r.report(err)
		return
	}
	fmt.Fprintln(r.out, "Successfully Deleted")
}

func (r *REPL) cmdUnlock() {
	text, err := r.term.PasswordPrompt("Condition text: ")
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if _, err := r.client.Unlock(ctx, text); err != nil {
		r.report(err)
		return
	}
	fmt.Fprintln(r.out, "Access granted.")
}
