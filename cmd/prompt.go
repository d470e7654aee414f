package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// stdinIsTerminal reports whether missing parameters can be collected
// interactively. Without a terminal every parameter must come from flags.
func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// promptLine prints the label and reads one line, trimmed.
func promptLine(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptChoice shows a numbered option list and reads a selection, either
// as a number or as an exact option name. An empty answer picks def when
// it is a valid index; invalid answers re-prompt.
func promptChoice(in *bufio.Reader, title string, options []string, def int) (string, error) {
	fmt.Println(title)
	for i, opt := range options {
		marker := " "
		if i == def {
			marker = "*"
		}
		fmt.Printf(" %s %2d) %s\n", marker, i+1, opt)
	}

	for {
		answer, err := promptLine(in, "> ")
		if err != nil {
			return "", err
		}
		if answer == "" && def >= 0 && def < len(options) {
			return options[def], nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, opt := range options {
			if answer == opt {
				return opt, nil
			}
		}
		fmt.Printf("Enter a number between 1 and %d.\n", len(options))
	}
}

// promptYesNo reads a y/n answer; empty input picks the default.
func promptYesNo(in *bufio.Reader, label string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	answer, err := promptLine(in, fmt.Sprintf("%s %s ", label, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ensurePath returns the flag value or prompts for a path on a terminal.
func ensurePath(in *bufio.Reader, flagValue, label, flagName string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !stdinIsTerminal() {
		return "", fmt.Errorf("missing %s: pass --%s or run interactively", label, flagName)
	}
	path, err := promptLine(in, fmt.Sprintf("Path to the %s: ", label))
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("no %s selected", label)
	}
	return path, nil
}

// ensureKey returns the flag value or runs a header picker on a terminal.
// The picker defaults to the first column.
func ensureKey(in *bufio.Reader, flagValue, label string, headers []string, flagName string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !stdinIsTerminal() {
		return "", fmt.Errorf("missing %s key column: pass --%s or run interactively", label, flagName)
	}
	if len(headers) == 0 {
		return "", fmt.Errorf("the %s file has no columns to key on", label)
	}
	return promptChoice(in, fmt.Sprintf("Join key column of the %s:", label), headers, 0)
}
