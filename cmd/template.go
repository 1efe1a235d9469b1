package cmd

import (
	"fmt"
	"os"

	"github.com/hance08/kea-import/internal/decoder"
	"github.com/hance08/kea-import/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const defaultTemplateName = "kea-import-template.xlsx"

type templateFlags struct {
	Force bool
}

func NewTemplateCmd() *cobra.Command {
	flags := &templateFlags{}

	cmd := &cobra.Command{
		Use:   "template [path]",
		Short: "Write an example import workbook",
		Long:  `Write an xlsx workbook with the expected columns and a sample balanced voucher.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultTemplateName
			if len(args) == 1 {
				path = args[0]
			}
			return runTemplate(path, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func runTemplate(path string, flags *templateFlags) error {
	if _, err := os.Stat(path); err == nil && !flags.Force {
		overwrite, err := prompts.PromptConfirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			pterm.Info.Println("Template not written")
			return nil
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := decoder.WriteTemplate(f); err != nil {
		return err
	}

	pterm.Success.Printf("Template written to %s\n", path)
	return nil
}
