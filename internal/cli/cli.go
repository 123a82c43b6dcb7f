package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ytget/blinkratio/internal/platform"
	"github.com/ytget/blinkratio/internal/reference"
)

// Exit codes
const (
	ExitOK       = 0
	ExitNoResult = 1
	ExitUsage    = 2
)

var (
	// ErrUsage marks malformed command lines
	ErrUsage = errors.New("usage")
	// ErrNoResult marks inputs the calculators reject
	ErrNoResult = errors.New("no result for these inputs")
)

// App runs commands against one output
type App struct {
	out     io.Writer
	errOut  io.Writer
	styles  styles
	numbers *platform.NumberFormat
	catalog *reference.Catalog
	version string
}

// New creates a command line app writing to out and errOut
func New(out, errOut io.Writer, catalog *reference.Catalog, version string) *App {
	return &App{
		out:     out,
		errOut:  errOut,
		styles:  newStyles(out),
		numbers: platform.NewNumberFormat("en"),
		catalog: catalog,
		version: version,
	}
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(a *App, args []string) error
}

var commands = []command{
	{"convert", "convert VALUE FROM TO", "convert a length between px, pt, em, rem, in, cm and mm", (*App).runConvert},
	{"ratio", "ratio solve|compare|scale ...", "solve, compare or scale aspect ratios", (*App).runRatio},
	{"spacing", "spacing [-base N] [-ratio R] [-steps N] [-unit U]", "generate a geometric spacing scale", (*App).runSpacing},
	{"color", "color HEX [HEX]", "describe a hex color and its contrast", (*App).runColor},
	{"catalog", "catalog [-section S] [QUERY]", "search the design reference catalog", (*App).runCatalog},
	{"version", "version", "print the version", (*App).runVersion},
}

// Run executes args (without the program name) and returns the exit code
func (a *App) Run(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printUsage()
		if len(args) == 0 {
			return ExitUsage
		}
		return ExitOK
	}

	for _, cmd := range commands {
		if cmd.name != args[0] {
			continue
		}
		err := cmd.run(a, args[1:])
		switch {
		case err == nil:
			return ExitOK
		case errors.Is(err, ErrNoResult):
			fmt.Fprintln(a.errOut, a.styles.err.Render(err.Error()))
			return ExitNoResult
		case errors.Is(err, flag.ErrHelp):
			return ExitOK
		default:
			fmt.Fprintln(a.errOut, a.styles.err.Render(err.Error()))
			fmt.Fprintln(a.errOut, a.styles.muted.Render("usage: blinkratio-cli "+cmd.usage))
			return ExitUsage
		}
	}

	fmt.Fprintln(a.errOut, a.styles.err.Render(fmt.Sprintf("unknown command %q", args[0])))
	a.printUsage()
	return ExitUsage
}

func (a *App) printUsage() {
	fmt.Fprintln(a.errOut, a.styles.heading.Render("blinkratio-cli")+" "+a.styles.muted.Render("design ratio toolkit"))
	for _, cmd := range commands {
		fmt.Fprintf(a.errOut, "  %-52s %s\n", cmd.usage, a.styles.muted.Render(cmd.summary))
	}
}

func (a *App) runVersion(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: version takes no arguments", ErrUsage)
	}
	fmt.Fprintln(a.out, a.version)
	return nil
}

// newFlagSet creates a subcommand flag set that reports errors to errOut
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// parseNumbers parses every arg as a float
func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrUsage, arg)
		}
		values[i] = v
	}
	return values, nil
}

// line prints "label  value"
func (a *App) line(label, value string) {
	fmt.Fprintf(a.out, "%s %s\n", a.styles.label.Render(label+":"), a.styles.value.Render(value))
}
