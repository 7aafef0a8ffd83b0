package cli

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/temirov/tree/internal/tree"
)

func TestParseDepth(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		input           string
		expected        uint
		expectedMessage string
	}{
		{name: "zero", input: "0", expected: 0},
		{name: "positive", input: "12", expected: 12},
		{name: "leading_plus", input: "+3", expected: 3},
		{name: "letters", input: "abc", expectedMessage: invalidDigitMessage},
		{name: "negative", input: "-1", expectedMessage: invalidDigitMessage},
		{name: "plus_only", input: "+", expectedMessage: invalidDigitMessage},
		{name: "empty", input: "", expectedMessage: emptyIntegerMessage},
		{name: "overflow", input: "999999999999999999999999", expectedMessage: integerTooLargeMessage},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			parsed, parseErr := parseDepth(testCase.input)
			if testCase.expectedMessage == "" {
				if parseErr != nil {
					t.Fatalf("unexpected error: %v", parseErr)
				}
				if parsed != testCase.expected {
					t.Fatalf("expected %d, got %d", testCase.expected, parsed)
				}
				return
			}
			if parseErr == nil {
				t.Fatalf("expected error for %q", testCase.input)
			}
			if parseErr.Error() != testCase.expectedMessage {
				t.Fatalf("expected message %q, got %q", testCase.expectedMessage, parseErr.Error())
			}
			if !errors.Is(parseErr, tree.ErrInvalidConfiguration) {
				t.Fatalf("expected invalid configuration error, got %v", parseErr)
			}
		})
	}
}

func TestRegisterDepthFlag(t *testing.T) {
	t.Parallel()

	command := &cobra.Command{Use: "depth-test"}
	var depth *uint
	registerDepthFlag(command.Flags(), &depth)

	if err := command.ParseFlags([]string{}); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if depth != nil {
		t.Fatalf("expected unlimited depth, got %d", *depth)
	}
	if err := command.ParseFlags([]string{"-d", "4"}); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if depth == nil || *depth != 4 {
		t.Fatalf("expected depth 4, got %v", depth)
	}
	if lookup := command.Flags().Lookup(depthFlagName); lookup == nil || lookup.Value.String() != "4" {
		t.Fatalf("expected flag value to render as 4")
	}
}

func TestCopyFlagValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		arguments   []string
		expected    bool
		expectError bool
		positional  []string
	}{
		{name: "absent", arguments: []string{}, expected: false},
		{name: "bare_flag_keeps_path", arguments: []string{"--copy", "dir"}, expected: true, positional: []string{"dir"}},
		{name: "explicit_false", arguments: []string{"--copy=no"}, expected: false},
		{name: "explicit_true", arguments: []string{"--copy=on"}, expected: true},
		{name: "invalid_literal", arguments: []string{"--copy=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "copy-test"}
			var copyEnabled bool
			registerCopyFlag(command.Flags(), &copyEnabled)
			parseErr := command.ParseFlags(testCase.arguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if copyEnabled != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, copyEnabled)
			}
			remaining := command.Flags().Args()
			if len(remaining) != len(testCase.positional) {
				t.Fatalf("expected positional %v, got %v", testCase.positional, remaining)
			}
		})
	}
}
