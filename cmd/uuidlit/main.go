// Command uuidlit checks UUID literals in Go source.
//
//	uuidlit check [-c config.yaml] [--format text|json] [path ...]
//	uuidlit expr <literal>
//
// check reports every invalid literal passed to a configured function and
// exits with status 1 if there is any. expr prints the [16]byte expression a
// literal stands for, or the located error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/jessevdk/go-flags"

	"github.com/Lzww0608/uuidlit"
	"github.com/Lzww0608/uuidlit/internal/config"
	"github.com/Lzww0608/uuidlit/internal/diag"
	"github.com/Lzww0608/uuidlit/internal/logger"
	"github.com/Lzww0608/uuidlit/internal/scan"
)

// errInvalidLiterals makes the command exit with status 1 once the
// diagnostics have been written.
var errInvalidLiterals = errors.New("invalid UUID literals")

type options struct {
	Config  string `short:"c" long:"config" description:"YAML config file (default .uuidlit.yaml if present)"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug output"`
}

type checkCommand struct {
	Format string `long:"format" choice:"text" choice:"json" default:"text" description:"Diagnostic output format"`
	Args   struct {
		Paths []string `positional-arg-name:"path"`
	} `positional-args:"yes"`

	ctx    context.Context
	opts   *options
	stdout io.Writer
	stderr io.Writer
}

type exprCommand struct {
	Args struct {
		Literal string `positional-arg-name:"literal"`
	} `positional-args:"yes" required:"yes"`

	stdout io.Writer
}

// jsonReport is the --format json shape of a diagnostic.
type jsonReport struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Message string `json:"message"`
}

func (c *checkCommand) Execute(args []string) error {
	cfg, err := config.Load(c.opts.Config)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.opts.Verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithOutput(c.stderr),
		logger.WithAttr(slog.String("cmd", "check")),
	)

	res, err := scan.NewChecker(cfg, log).Check(c.ctx, c.Args.Paths...)
	if err != nil {
		log.Error("check failed", logger.Error(err))
		return err
	}

	if c.Format == "json" {
		enc := json.NewEncoder(c.stdout)
		for _, r := range res.Reports {
			err := enc.Encode(jsonReport{
				File:    r.Pos.Filename,
				Line:    r.Pos.Line,
				Column:  r.Pos.Column,
				Offset:  r.Pos.Offset,
				Length:  r.Length,
				Message: r.Message,
			})
			if err != nil {
				return err
			}
		}
	} else {
		for _, r := range res.Reports {
			if err := r.Render(c.stdout, r.Line); err != nil {
				return err
			}
		}
	}

	if len(res.Reports) > 0 {
		return errInvalidLiterals
	}
	return nil
}

func (c *exprCommand) Execute(args []string) error {
	lit := c.Args.Literal
	u, err := uuidlit.TryParse(lit)
	if err != nil {
		raw := strconv.Quote(lit)
		d := diag.New(token.Position{Filename: "literal", Line: 1, Column: 1}, raw, err)
		if err := d.Render(c.stdout, raw); err != nil {
			return err
		}
		return errInvalidLiterals
	}
	_, err = fmt.Fprintln(c.stdout, diag.Expr(u))
	return err
}

// run executes the command line and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "uuidlit"

	check := &checkCommand{ctx: ctx, opts: &opts, stdout: stdout, stderr: stderr}
	if _, err := parser.AddCommand("check", "Check UUID literals in Go files",
		"Check the first argument of every call to a configured function and report invalid UUID literals.", check); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	expr := &exprCommand{stdout: stdout}
	if _, err := parser.AddCommand("expr", "Print the bytes of a UUID literal",
		"Parse a single UUID literal and print it as a Go [16]byte expression.", expr); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		switch {
		case errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp:
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		case errors.Is(err, errInvalidLiterals):
			return 1
		default:
			fmt.Fprintf(stderr, "uuidlit: %v\n", err)
			return 2
		}
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
