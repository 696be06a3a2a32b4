package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt decoration: the logged-in email, if any.
func (a *App) getStatus() string {
	cur := a.sessions.Current()
	if cur == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", cur.Email)
}

// Root greets the user and runs the REPL over stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to PopX (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
