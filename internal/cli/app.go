// Package cli implements the interactive RecipeVault client: a small REPL
// that drives a Session (register, login, list and add recipes).
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/rvault/recipevault/internal/logging"
	"github.com/rvault/recipevault/internal/session"
)

// App wires the interactive commands to a Session.
type App struct {
	session *session.Session
	logger  logging.Logger
	reader  *bufio.Reader
	email   string
}

// NewApp returns an App reading commands from stdin.
func NewApp(s *session.Session, logger logging.Logger) *App {
	return &App{
		session: s,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) getStatus() string {
	if a.email != "" && a.isLoggedIn() {
		return "(" + a.email + ")"
	}
	return ""
}
