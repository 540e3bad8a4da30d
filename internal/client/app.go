package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-humans/internal/adapter"
	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/models"
)

const usage = `usage: client [flags] <command> [args]

commands:
  greet                          print the greeting
  list                           list all humans
  get <id>                       show one human
  create <name> <age> <sex>      add a human
  update <id> <name> <age> <sex> replace a human
  delete <id>                    remove a human
  version                        print the server version
`

type command struct {
	args int
	// public commands run without logging in
	public bool
	run    func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"greet":   {args: 0, run: (*App).greet},
	"list":    {args: 0, run: (*App).list},
	"get":     {args: 1, run: (*App).get},
	"create":  {args: 3, run: (*App).create},
	"update":  {args: 4, run: (*App).update},
	"delete":  {args: 1, run: (*App).delete},
	"version": {args: 0, public: true, run: (*App).version},
}

type App struct {
	api         adapter.HumansAPI
	credentials config.ClientCredentials
	out         io.Writer

	logger *logger.Logger
}

func NewApp(api adapter.HumansAPI, credentials config.ClientCredentials, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, credentials: credentials, out: out, logger: logger}
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	io.WriteString(w, usage)
}

// Run implements [Client]. Unless the command is public it logs in first
// when a login is configured.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}

	name, operands := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(operands) != cmd.args {
		return fmt.Errorf("%w: %s expects %d, got %d", ErrWrongArgCount, name, cmd.args, len(operands))
	}

	if !cmd.public {
		if err := a.login(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("command", name).Strs("args", operands).Msg("running command")
	return cmd.run(a, ctx, operands)
}

func (a *App) login(ctx context.Context) error {
	creds := a.credentials
	if creds.Login == "" && creds.Password == "" {
		return nil
	}
	if creds.Login == "" || creds.Password == "" {
		return ErrIncompleteLogin
	}

	if _, err := a.api.Login(ctx, models.Credentials{Username: creds.Login, Password: creds.Password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func (a *App) greet(ctx context.Context, _ []string) error {
	greeting, err := a.api.Greeting(ctx)
	if err != nil {
		return err
	}
	return a.print(greeting)
}

func (a *App) list(ctx context.Context, _ []string) error {
	humans, err := a.api.ListHumans(ctx)
	if err != nil {
		return err
	}
	return a.print(humans)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	human, err := a.api.GetHuman(ctx, id)
	if err != nil {
		return err
	}
	return a.print(human)
}

func (a *App) create(ctx context.Context, args []string) error {
	input, err := parseHumanInput(args)
	if err != nil {
		return err
	}

	human, err := a.api.CreateHuman(ctx, input)
	if err != nil {
		return err
	}
	return a.print(human)
}

func (a *App) update(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	input, err := parseHumanInput(args[1:])
	if err != nil {
		return err
	}

	human, err := a.api.UpdateHuman(ctx, id, input)
	if err != nil {
		return err
	}
	return a.print(human)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err = a.api.DeleteHuman(ctx, id); err != nil {
		return err
	}
	return a.print(map[string]string{"message": fmt.Sprintf("id %d deleted", id)})
}

func (a *App) version(ctx context.Context, _ []string) error {
	version, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalidArgument, raw)
	}
	return id, nil
}

// parseHumanInput reads name, age and sex operands.
func parseHumanInput(args []string) (models.HumanInput, error) {
	age, err := strconv.Atoi(args[1])
	if err != nil {
		return models.HumanInput{}, fmt.Errorf("%w: age %q is not an integer", ErrInvalidArgument, args[1])
	}
	return models.NewHumanInput(args[0], age, args[2]), nil
}
