package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

// ErrNoTableFile is returned by commands that write aliases when no table file is configured.
var ErrNoTableFile = errors.New("no alias table file configured; pass --table or set ALIASREG_TABLE")

// prompter carries the terminal streams of one interactive command. A single
// buffered reader is shared so consecutive prompts do not lose input.
type prompter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	useFZF bool
}

func newPrompter(in io.Reader, out, errOut io.Writer, useFZF bool) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, errOut: errOut, useFZF: useFZF}
}

func entryLine(e alias.Entry) string {
	return fmt.Sprintf("%s -> %s", e.Name, e.Target)
}

// selectEntries lets the user pick entries, with fzf when available and a
// numeric prompt otherwise. A nil result with a nil error means cancelled.
func (p *prompter) selectEntries(entries []alias.Entry) ([]alias.Entry, error) {
	if !p.useFZF {
		return p.selectNumerically(entries)
	}

	selected, err := selectEntriesViaFZF(entries)
	switch {
	case err == nil:
		if len(selected) == 0 && len(entries) > 0 {
			fmt.Fprintln(p.out, ui.InfoColor("No aliases selected via fzf."))
		}
		return selected, nil
	case errors.Is(err, ErrFZFNotFound):
		fmt.Fprintln(p.out, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
		return p.selectNumerically(entries)
	case errors.Is(err, ErrFZFCancelled):
		fmt.Fprintln(p.out, ui.InfoColor("Selection cancelled via fzf. No aliases will be added."))
		return nil, nil
	default:
		fmt.Fprintln(p.errOut, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", err)))
		return p.selectNumerically(entries)
	}
}

func selectEntriesViaFZF(entries []alias.Entry) ([]alias.Entry, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, ErrFZFNotFound
	}

	if len(entries) == 0 {
		return []alias.Entry{}, nil
	}

	var inputBuffer bytes.Buffer
	byLine := make(map[string]alias.Entry)
	for _, e := range entries {
		line := entryLine(e)
		byLine[line] = e
		inputBuffer.WriteString(line + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--multi", "--ansi", "--prompt", ui.PromptColor("Select aliases (TAB to multi-select, Enter to confirm) > "))
	fzfCmd.Stdin = &inputBuffer

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = &errBuffer

	if err := fzfCmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			// Exit code 1 with no output means no match was selected.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return []alias.Entry{}, nil
			}
		}
		return nil, fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	var chosen []alias.Entry
	for _, line := range strings.Split(strings.TrimSpace(outBuffer.String()), "\n") {
		if e, ok := byLine[strings.TrimSpace(line)]; ok {
			chosen = append(chosen, e)
		}
	}
	return chosen, nil
}

func (p *prompter) selectNumerically(entries []alias.Entry) ([]alias.Entry, error) {
	if len(entries) == 0 {
		return []alias.Entry{}, nil
	}

	fmt.Fprintln(p.out, ui.PromptColor("Select aliases to add (e.g., 1,3-5, or 'all', 'none'):"))
	for i, e := range entries {
		fmt.Fprintf(p.out, "%d. %s %s %s\n", i+1, ui.AliasNameColor(e.Name), ui.AliasArrowColor("->"), ui.AliasTargetColor(e.Target))
	}
	fmt.Fprint(p.out, ui.PromptColor("Your choice: "))

	input, err := p.readLine()
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	indices, err := parseNumericSelectionInput(input, len(entries))
	if err != nil {
		return nil, fmt.Errorf("invalid selection input: %w", err)
	}

	chosen := make([]alias.Entry, 0, len(indices))
	for _, idx := range indices {
		chosen = append(chosen, entries[idx])
	}
	return chosen, nil
}

// confirm asks a yes/no question; anything but yes or y is a no.
func (p *prompter) confirm(question string) (bool, error) {
	fmt.Fprint(p.out, ui.PromptColor(question+" (yes/no): "))
	input, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "yes" || input == "y", nil
}

// readLine accepts a final line without a newline.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return line, nil
}

func parseNumericSelectionInput(input string, count int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	if trimmedInput == "none" || trimmedInput == "" {
		return []int{}, nil
	}
	if trimmedInput == "all" {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", count, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1)
			}
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num <= 0 || num > count {
			return nil, fmt.Errorf("invalid number (max %d): %s", count, part)
		}
		selections = append(selections, num-1)
	}

	seen := make(map[int]bool)
	var unique []int
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}

// writeSelected appends entries to the configured table file and reports the outcome.
func writeSelected(out io.Writer, svcs *Services, entries []alias.Entry) error {
	added, err := svcs.Writer.AddEntries(entries)
	if err != nil {
		return fmt.Errorf("could not write aliases to %s: %w", svcs.Writer.Destination(), err)
	}

	skipped := len(entries) - added
	if added > 0 {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("\n%d alias(es) written to %s.", added, svcs.Writer.Destination())))
	}
	if skipped > 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%d alias(es) were skipped because the table already declares them.", skipped)))
	}
	if added > 0 {
		fmt.Fprintln(out, ui.InfoColor("They are registered the next time the table is loaded, e.g.:"))
		fmt.Fprintln(out, ui.CodeColor(fmt.Sprintf("   aliasreg --table %s list", svcs.Writer.Destination())))
	}
	return nil
}
