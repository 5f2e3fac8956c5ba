// Package main is the entry point for the kapsel CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Global19-atlassian-net/kapsel/cmd/kapsel/commands"
	"github.com/Global19-atlassian-net/kapsel/internal/app"
	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	_ "github.com/Global19-atlassian-net/kapsel/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrSpecsOutOfSync) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
