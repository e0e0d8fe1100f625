// notesctl is an interactive terminal client for the notes API.
//
// Usage:
//
//	notesctl [--url http://localhost:8888] [--condition] [--token jwt] [--timeout 10s]
//
// Commands (in REPL):
//
//	ls               List all notes
//	add              Create a note
//	show <id>        Show one note
//	edit <id>        Edit the title and body of a note
//	rm <id>          Delete a note
//	unlock           Exchange the condition text for an access token
//	help             Show this help
//	exit / quit / q  Exit
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ferdiebergado/jobnotes/internal/client"
	"github.com/ferdiebergado/jobnotes/internal/pkg/env"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("notesctl", flag.ContinueOnError)
	baseURL := fs.StringP("url", "u", env.Env("JOBNOTES_URL", "http://localhost:8888"), "base URL of the notes API")
	unlock := fs.BoolP("condition", "c", false, "ask for the condition text before starting")
	token := fs.String("token", env.Env("JOBNOTES_TOKEN", ""), "access token from a previous unlock")
	timeout := fs.Duration("timeout", 10*time.Second, "timeout for each API request")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	c, err := client.New(*baseURL,
		client.WithHTTPClient(&http.Client{Timeout: *timeout}),
		client.WithToken(*token),
	)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completer)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer saveHistory(line)

	r := &REPL{client: c, term: line, out: os.Stdout}
	if *unlock {
		r.cmdUnlock()
	}
	return r.Run()
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".notesctl_history")
}

func saveHistory(line *liner.State) {
	path := historyFile()
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

var commands = []string{"ls", "add", "show", "edit", "rm", "unlock", "help", "quit"}

func completer(line string) []string {
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, strings.ToLower(line)) {
			out = append(out, c)
		}
	}
	return out
}

// isAbort reports whether err ends the session.
func isAbort(err error) bool {
	return errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF)
}
