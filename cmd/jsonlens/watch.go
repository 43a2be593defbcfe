package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/jsonlens/internal/domain/entities"
	"github.com/ersonp/jsonlens/internal/domain/services"
)

type watchFlags struct {
	indent int
}

func newWatchCmd() *cobra.Command {
	var flags watchFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive mode with instant validation feedback",
		Long:  "Paste JSON interactively and get validation, error snippets, and reformatting on the fly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.indent, "indent", "i", 0, "Indent width in spaces (default from config)")

	return cmd
}

type watchState struct {
	document *services.Document
	snippet  *services.Snippet
	history  *services.History // nil when history is disabled
	indent   int

	lastInput   string
	lastOutput  string
	outputSaved bool
}

func runWatch(cmd *cobra.Command, flags watchFlags) error {
	return withInternalDeps(func(d *internalDeps) error {
		indent := flags.indent
		if indent <= 0 {
			indent = d.Config.Format.Indent
		}

		state := &watchState{
			document: d.document,
			snippet:  d.Snippet,
			history:  d.history,
			indent:   indent,
		}

		return state.runInputLoop(cmd.Context())
	})
}

func (s *watchState) runInputLoop(ctx context.Context) error {
	fmt.Println("jsonlens interactive mode. Paste JSON and press Enter twice to validate.")
	fmt.Println("Commands: 'format', 'minify', 'copy', 'save <file>', 'last', 'restore', 'discard', 'help', 'quit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var inputBuffer strings.Builder

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()

		if inputBuffer.Len() == 0 {
			if handled, shouldExit := s.handleCommand(ctx, line, scanner); handled {
				if shouldExit {
					return nil
				}
				continue
			}
		}

		s.handleInput(ctx, line, &inputBuffer)
	}

	return scanner.Err()
}

// handleCommand processes user commands. Returns (handled, shouldExit).
func (s *watchState) handleCommand(ctx context.Context, line string, scanner *bufio.Scanner) (bool, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, false
	}

	switch fields[0] {
	case "quit", "exit":
		return true, s.handleQuit(scanner)
	case "format":
		s.reformat(ctx, entities.OperationFormat)
		return true, false
	case "minify":
		s.reformat(ctx, entities.OperationMinify)
		return true, false
	case "copy":
		if err := s.copyOutput(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return true, false
	case "save":
		args := strings.Fields(line)
		if len(args) < 2 {
			fmt.Println("Usage: save <file>")
		} else if err := s.saveOutput(args[1]); err != nil {
			fmt.Printf("Error saving output: %v\n", err)
		}
		return true, false
	case "last":
		s.showLastInput()
		return true, false
	case "restore":
		s.restoreInput(ctx)
		return true, false
	case "discard":
		s.lastInput = ""
		s.lastOutput = ""
		s.outputSaved = false
		fmt.Println("Input and output discarded.")
		return true, false
	case "help":
		s.showHelp()
		return true, false
	default:
		return false, false
	}
}

func (s *watchState) handleQuit(scanner *bufio.Scanner) bool {
	if s.lastOutput != "" && !s.outputSaved {
		fmt.Println("Warning: unsaved output will be lost. Type 'quit' again to confirm.")
		fmt.Print("> ")
		if scanner.Scan() && strings.ToLower(strings.TrimSpace(scanner.Text())) == "quit" {
			fmt.Println("Goodbye!")
			return true
		}
		return false
	}
	fmt.Println("Goodbye!")
	return true
}

func (s *watchState) showHelp() {
	fmt.Println("Commands:")
	fmt.Println("  format      - Pretty-print the last input")
	fmt.Println("  minify      - Compact the last input")
	fmt.Println("  copy        - Print the last output by itself for clipboard capture")
	fmt.Println("  save <file> - Write the last output to a file")
	fmt.Println("  last        - Show the last input")
	fmt.Println("  restore     - Reload the most recent input from history")
	fmt.Println("  discard     - Forget the last input and output")
	fmt.Println("  quit        - Exit interactive mode")
	fmt.Println("  help        - Show this help")
	fmt.Println()
	fmt.Println("Paste JSON and press Enter twice to validate it.")
}

func (s *watchState) handleInput(ctx context.Context, line string, inputBuffer *strings.Builder) {
	if line == "" {
		if inputBuffer.Len() > 0 {
			s.processBufferedInput(ctx, inputBuffer.String())
			inputBuffer.Reset()
		}
		return
	}
	inputBuffer.WriteString(line)
	inputBuffer.WriteString("\n")
}

func (s *watchState) processBufferedInput(ctx context.Context, text string) {
	text = strings.TrimSuffix(text, "\n")
	s.lastInput = text

	vErr := s.document.Validate(text)
	s.record(ctx, entities.OperationValidate, text, "", vErr)

	if vErr == nil {
		fmt.Println("Valid JSON. Type 'format' or 'minify' to reformat.")
		fmt.Println()
		return
	}

	var synErr *entities.SyntaxError
	if errors.As(vErr, &synErr) && synErr.Pos != nil {
		fmt.Println(s.snippet.Render(text, *synErr.Pos, synErr.Msg))
	} else {
		fmt.Printf("Invalid JSON: %v\n", vErr)
	}
	fmt.Println()
}

func (s *watchState) reformat(ctx context.Context, op entities.Operation) {
	if s.lastInput == "" {
		fmt.Println("Nothing to reformat. Paste JSON first.")
		return
	}

	var (
		out string
		err error
	)
	if op == entities.OperationMinify {
		out, err = s.document.Minify(s.lastInput)
	} else {
		out, err = s.document.Prettify(s.lastInput, s.indent)
	}
	s.record(ctx, op, s.lastInput, out, err)

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	s.lastOutput = out
	s.outputSaved = false
	fmt.Println(out)
	fmt.Println()
}

// copyOutput reprints the last output with no prompt or decoration so a
// terminal selection or pipe can capture it cleanly.
func (s *watchState) copyOutput() error {
	if s.lastOutput == "" {
		return errors.New("no output to copy (run 'format' or 'minify' first)")
	}
	fmt.Println(s.lastOutput)
	return nil
}

func (s *watchState) saveOutput(path string) error {
	if s.lastOutput == "" {
		return errors.New("no output to save (run 'format' or 'minify' first)")
	}
	if err := os.WriteFile(path, []byte(s.lastOutput+"\n"), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	s.outputSaved = true
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func (s *watchState) showLastInput() {
	if s.lastInput == "" {
		fmt.Println("No input yet.")
		return
	}
	fmt.Println(s.lastInput)
}

func (s *watchState) restoreInput(ctx context.Context) {
	if s.history == nil {
		fmt.Println("History is not available (run 'jsonlens init' first).")
		return
	}

	entry, err := s.history.Latest(ctx)
	if err != nil {
		fmt.Printf("Error loading history: %v\n", err)
		return
	}
	if entry == nil {
		fmt.Println("History is empty.")
		return
	}

	s.lastInput = entry.Input
	fmt.Println("Restored input:")
	fmt.Println(entry.Input)
}

// record persists an operation when history is enabled. Recording is
// advisory in interactive mode; failures are shown but never interrupt
// the session.
func (s *watchState) record(ctx context.Context, op entities.Operation, input, output string, opErr error) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, op, input, output, opErr); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
}
