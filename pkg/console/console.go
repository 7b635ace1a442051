package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/fatih/color"
)

// Prompt is printed before every input line.
const Prompt = "FRECE> "

// Handler executes the engine-backed console commands. Implementations
// render their own results.
type Handler interface {
	Scan(ctx context.Context, cmd ScanCmd) error
	Find(ctx context.Context, cmd FindCmd) error
	List(ctx context.Context, cmd ListCmd) error
	Recover(ctx context.Context, cmd RecoverCmd) error
	Man(cmd ManCmd) error
}

// Console reads commands from in and writes prompts and messages to out.
type Console struct {
	handler Handler
	version string
	in      io.Reader
	out     io.Writer
	pick    func(n int) int
}

// Option configures a Console.
type Option func(*Console)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Console) {
		c.in = in
		c.out = out
	}
}

// WithBannerPicker replaces the random banner choice.
func WithBannerPicker(pick func(n int) int) Option {
	return func(c *Console) {
		c.pick = pick
	}
}

// New creates a console that reports version in its greeting.
func New(handler Handler, version string, opts ...Option) *Console {
	c := &Console{
		handler: handler,
		version: version,
		in:      os.Stdin,
		out:     os.Stdout,
		pick:    rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	cyan  = color.New(color.FgCyan)
	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
)

// Run prints the banner and processes lines until exit, end of input or
// cancellation of ctx. Command errors are printed and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	logger := logging.GetLogger("console")
	logger.Debug().Msg("Console started")

	c.greet()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for {
		_, _ = cyan.Fprint(c.out, Prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out, "\nExiting interactive mode.")
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out, "\nExiting interactive mode.")
				return <-readErr
			}
			line = l
		}

		cmd, err := Parse(line)
		if err != nil {
			c.printError(err)
			continue
		}
		if cmd == nil {
			continue
		}
		if _, ok := cmd.(ExitCmd); ok {
			logger.Debug().Msg("Console exit requested")
			return nil
		}

		if err := c.dispatch(ctx, cmd); err != nil {
			logger.Debug().Err(err).Msg("Console command failed")
			c.printError(err)
		}
		if ctx.Err() != nil {
			fmt.Fprintln(c.out, "\nExiting interactive mode.")
			return nil
		}
	}
}

func (c *Console) dispatch(ctx context.Context, cmd Command) error {
	switch cmd := cmd.(type) {
	case ScanCmd:
		return c.handler.Scan(ctx, cmd)
	case FindCmd:
		return c.handler.Find(ctx, cmd)
	case ListCmd:
		return c.handler.List(ctx, cmd)
	case RecoverCmd:
		return c.handler.Recover(ctx, cmd)
	case ManCmd:
		return c.handler.Man(cmd)
	case HelpCmd:
		c.printHelp()
	case VersionCmd:
		_, _ = cyan.Fprintf(c.out, "%s\n", c.version)
	}
	return nil
}

func (c *Console) greet() {
	b := banners[c.pick(len(banners))]
	_, _ = b.art.Fprint(c.out, b.text)
	_, _ = cyan.Fprintf(c.out, "%s\n\n", b.tagline)
	fmt.Fprintf(c.out, "Welcome to %s\n", c.version)
	fmt.Fprintln(c.out, "Type '--help' for a list of available commands.")
}

func (c *Console) printError(err error) {
	_, _ = red.Fprintf(c.out, "Error: %v\n", err)
}

func (c *Console) printHelp() {
	_, _ = cyan.Fprintln(c.out, "FRECE - File Recovery Console")
	fmt.Fprintln(c.out, "Scan directories and recover files into a separate tree.")
	fmt.Fprintln(c.out)
	_, _ = green.Fprintln(c.out, "Commands:")
	for _, line := range helpLines {
		fmt.Fprintf(c.out, "  %-34s %s\n", line[0], line[1])
	}
}

var helpLines = [][2]string{
	{"scan <dir> [ext]", "List files, optionally by extension"},
	{"find <dir> <name>", "List files with exactly this name"},
	{"list <dir>", "Count files per extension"},
	{"recover <src> [dest] [--ext E]", "Copy files into dest"},
	{"man <command>", "Show the manual for a command"},
	{"--version", "Show the version"},
	{"--help", "Show this help"},
	{"exit", "Leave the console"},
}

type banner struct {
	art     *color.Color
	text    string
	tagline string
}

var banners = []banner{
	{
		art: color.New(color.FgRed),
		text: `
███████╗██████╗ ███████╗ ██████╗███████╗
██╔════╝██╔══██╗██╔════╝██╔════╝██╔════╝
█████╗  ██████╔╝█████╗  ██║     █████╗
██╔══╝  ██╔══██╗██╔══╝  ██║     ██╔══╝
██║     ██║  ██║███████╗╚██████╗███████╗
╚═╝     ╚═╝  ╚═╝╚══════╝ ╚═════╝╚══════╝
`,
		tagline: "File Recovery Tool",
	},
	{
		art: color.New(color.FgGreen),
		text: `
█▀▀ █▀▀█ █▀▀ █▀▀ █▀▀
█▀▀ █▄▄▀ █▀▀ █░░ █▀▀
▀░░ ▀░▀▀ ▀▀▀ ▀▀▀ ▀▀▀
`,
		tagline: "File Recovery Console.",
	},
}
