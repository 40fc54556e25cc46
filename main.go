package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsonpretty/internal/ast"
	"github.com/mcncl/jsonpretty/internal/config"
	"github.com/mcncl/jsonpretty/internal/errors"
	"github.com/mcncl/jsonpretty/internal/parser"
	"github.com/mcncl/jsonpretty/internal/printer"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent      int    `help:"Indent step width in spaces." short:"n"`
	Color       bool   `help:"Colorize the output." short:"c"`
	Config      string `help:"Path to a YAML config file." type:"path"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jsonpretty"),
		kong.Description("A tool to pretty-print JSON documents"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonpretty version %s\n", Version)
		return
	}

	cfg, err := config.LoadConfigWithCLI(CLI.Config, CLI.Indent, CLI.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Config: cfg}); err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonpretty --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse JSON input into a document tree
	doc, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. The document root must be an object
	if doc.Kind() != ast.KindObject {
		return errors.NewParseError(
			fmt.Sprintf("the document root is of type %s, not an object", doc.Kind()),
			errors.ErrRootNotObject,
		)
	}

	// 3. Pretty-print the tree
	var buf bytes.Buffer
	var palette *printer.Palette
	if ctx.Config.Color {
		palette = printer.DefaultPalette()
	}
	pr := printer.NewWithOptions(&buf, printer.Options{
		Indent:  ctx.Config.Indent,
		Palette: palette,
	})
	if err := pr.Print(doc); err != nil {
		return err
	}
	if ctx.Config.TrailingNewline {
		buf.WriteByte('\n')
	}

	// 4. Output the result
	return writeOutput(buf.Bytes())
}

// parseInput reads JSON from file or stdin
func parseInput() (ast.Value, error) {
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return ast.Value{}, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return ast.Value{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ast.Value{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return ast.Value{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseBytes(jsonData)
}

// writeOutput writes the pretty-printed document to file or stdout
func writeOutput(text []byte) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, text, 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Formatted JSON written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := os.Stdout.Write(text)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (ast.Value, error) {
	fmt.Fprintln(os.Stderr, "jsonpretty Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// Keep any final unterminated line
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return ast.Value{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return ast.Value{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
