package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// Choice is one entry of a select prompt: Label is shown, Key is returned.
type Choice[K comparable] struct {
	Key   K
	Label string
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptInput asks for a line of text. A blank answer falls back to
// defaultValue; surrounding spaces are dropped.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var answer string

	input := huh.NewInput().
		Title(message).
		Value(&answer)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}
	if validator != nil {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" && defaultValue != "" {
				return nil
			}
			return validator(strings.TrimSpace(s))
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// PromptSelect lets the user pick one of choices and returns its key.
// The cursor starts on defaultKey when it is present.
func PromptSelect[K comparable](message string, choices []Choice[K], defaultKey K) (K, error) {
	selected := defaultKey

	opts := make([]huh.Option[K], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Key))
	}

	err := huh.NewSelect[K]().
		Title(message).
		Options(opts...).
		Height(min(len(opts)+2, 12)).
		Value(&selected).
		Run()

	return selected, err
}
