package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetDefaultText is GetSimpleText with a value kept when the answer is empty.
func GetDefaultText(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// GetPassword reads a password without echo when stdin is a terminal. Piped
// input is read as a plain line from reader.
func GetPassword(reader *bufio.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		s, err := readLine(reader)
		fmt.Fprintln(w)
		return s, err
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetYesNo asks a yes/no question. An empty answer keeps def.
func GetYesNo(reader *bufio.Reader, prompt string, def bool, w io.Writer) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	s, err := GetSimpleText(reader, fmt.Sprintf("%s (%s)", prompt, hint), w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// GetOptionalInt reads an integer. An empty answer keeps def, which may be
// nil. Non-numeric input is returned as an error.
func GetOptionalInt(reader *bufio.Reader, prompt string, def *int, w io.Writer) (*int, error) {
	if def != nil {
		prompt = fmt.Sprintf("%s [%d]", prompt, *def)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &n, nil
}

// GetChoice lists options and reads a 1-based choice. An empty answer
// returns def.
func GetChoice(reader *bufio.Reader, prompt string, options []string, def int, w io.Writer) (int, error) {
	for i, o := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, o)
	}
	s, err := GetSimpleText(reader, fmt.Sprintf("%s [%d]", prompt, def+1), w)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("choose a number between 1 and %d", len(options))
	}
	return n - 1, nil
}
