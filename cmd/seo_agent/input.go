package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// choice is one selectable entry in a numbered prompt menu.
type choice struct {
	value       string
	description string
}

// promptLine reads one line, trimmed of surrounding whitespace. A closed
// input stream surfaces as an error so interrupted sessions abort instead of
// looping forever.
func promptLine(in *bufio.Reader, out io.Writer, label string) (string, error) {
	_, _ = fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptRequired re-asks until a non-empty answer is entered.
func promptRequired(in *bufio.Reader, out io.Writer, label, emptyMessage string) (string, error) {
	for {
		value, err := promptLine(in, out, label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		_, _ = fmt.Fprintln(out, emptyMessage)
	}
}

// promptChoice prints a numbered menu and re-asks until the answer names an
// option, by number or by value.
func promptChoice(in *bufio.Reader, out io.Writer, header, label string, choices []choice) (string, error) {
	_, _ = fmt.Fprintf(out, "\n%s\n", header)
	for i, c := range choices {
		_, _ = fmt.Fprintf(out, "%d. %s: %s\n", i+1, c.value, c.description)
	}

	for {
		answer, err := promptLine(in, out, label)
		if err != nil {
			return "", err
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(choices) {
			return choices[n-1].value, nil
		}
		lowered := strings.ToLower(answer)
		for _, c := range choices {
			if lowered == c.value {
				return c.value, nil
			}
		}
		_, _ = fmt.Fprintf(out, "❌ Invalid choice. Please choose from: %s\n", choiceValues(choices))
	}
}

func choiceValues(choices []choice) string {
	values := make([]string, len(choices))
	for i, c := range choices {
		values[i] = c.value
	}
	return strings.Join(values, ", ")
}

// promptIntInRange re-asks until a whole number within the bounds is entered.
func promptIntInRange(in *bufio.Reader, out io.Writer, label string, lower, upper int) (int, error) {
	for {
		answer, err := promptLine(in, out, label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil {
			_, _ = fmt.Fprintln(out, "❌ Please enter a valid number.")
			continue
		}
		if n < lower || n > upper {
			_, _ = fmt.Fprintf(out, "❌ Value should be between %d and %d.\n", lower, upper)
			continue
		}
		return n, nil
	}
}
