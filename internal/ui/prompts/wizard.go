package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// InitSettings is what the first-run wizard collects.
type InitSettings struct {
	Company     string
	JournalCode string
}

func PromptInitSettings(defaults InitSettings) (InitSettings, error) {
	settings := defaults

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to kea-import! This is the first execute, please set the default company:").
				Description("Imported entries are posted for this company unless --company is given.").
				Value(&settings.Company).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("company is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Journal code used when a row leaves it empty:").
				Options(
					huh.NewOption("OD - Opérations diverses", "OD"),
					huh.NewOption("AC - Achats", "AC"),
					huh.NewOption("VT - Ventes", "VT"),
					huh.NewOption("BQ - Banque", "BQ"),
					huh.NewOption("CA - Caisse", "CA"),
				).
				Value(&settings.JournalCode),
		),
	).Run()
	if err != nil {
		return InitSettings{}, err
	}

	settings.Company = strings.TrimSpace(settings.Company)
	return settings, nil
}
