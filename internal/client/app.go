package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-saas-backend/internal/adapter"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
)

type command struct {
	usage string
	// args is the exact argument count; -1 allows zero or one.
	args int
	run  func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"status": {
		usage: "status",
		run: func(ctx context.Context, a *App, _ []string) (any, error) {
			return a.server.Root(ctx)
		},
	},
	"diagnostics": {
		usage: "diagnostics",
		run: func(ctx context.Context, a *App, _ []string) (any, error) {
			return a.server.Diagnostics(ctx)
		},
	},
	"version": {
		usage: "version",
		run: func(ctx context.Context, a *App, _ []string) (any, error) {
			return a.server.Version(ctx)
		},
	},
	"register": {
		usage: "register <name> <email> <password>",
		args:  3,
		run: func(ctx context.Context, a *App, args []string) (any, error) {
			return a.server.Register(ctx, models.RegisterRequest{Name: args[0], Email: args[1], Password: args[2]})
		},
	},
	"login": {
		usage: "login <email> <password>",
		args:  2,
		run: func(ctx context.Context, a *App, args []string) (any, error) {
			return a.server.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
		},
	},
	"blog": {
		usage: "blog [limit]",
		args:  -1,
		run: func(ctx context.Context, a *App, args []string) (any, error) {
			var limit int64
			if len(args) == 1 {
				var err error
				if limit, err = strconv.ParseInt(args[0], 10, 64); err != nil {
					return nil, fmt.Errorf("%w: limit %q is not an integer", ErrUsage, args[0])
				}
			}
			return a.server.ListBlogPosts(ctx, limit)
		},
	},
	"contact": {
		usage: "contact <name> <email> <subject> <message>",
		args:  4,
		run: func(ctx context.Context, a *App, args []string) (any, error) {
			return a.server.SubmitContact(ctx, models.ContactRequest{
				Name: args[0], Email: args[1], Subject: args[2], Message: args[3],
			})
		},
	},
}

type App struct {
	server adapter.ServerAdapter
	out    io.Writer
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{server: server, out: out, logger: logger}
}

// Run executes args[0] with the remaining arguments and writes the result
// as indented JSON.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, Usage())
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], Usage())
	}

	params := args[1:]
	if !cmd.accepts(len(params)) {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	result, err := cmd.run(ctx, a, params)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

func (c command) accepts(n int) bool {
	if c.args < 0 {
		return n <= 1
	}
	return n == c.args
}

// Usage lists the available commands.
func Usage() string {
	lines := []string{"commands:"}
	for _, name := range []string{"status", "diagnostics", "version", "register", "login", "blog", "contact"} {
		lines = append(lines, "  "+commands[name].usage)
	}
	return strings.Join(lines, "\n")
}
