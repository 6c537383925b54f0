package snake

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// ErrEmpty is returned by Required when the answer is blank.
var ErrEmpty = errors.New("empty")

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// Required rejects blank input.
func Required(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmpty
	}
	return nil
}

// PromptString asks for a single line on the command's streams. def is
// pre-filled and editable.
func PromptString(cmd *cobra.Command, label, def string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: def != "",
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(result), nil
}

// PromptQuote asks for the text and category of a new quote. Values already
// given on the command line are offered as defaults.
func PromptQuote(cmd *cobra.Command, text, category string) (string, string, error) {
	text, err := PromptString(cmd, "Quote", text, Required)
	if err != nil {
		return "", "", err
	}
	category, err = PromptString(cmd, "Category", category, Required)
	if err != nil {
		return "", "", err
	}
	return text, category, nil
}

// NopCloser wraps w with a no-op Close.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
