package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swiftloan/swiftloan-cli/internal/domain"
)

func newLetterCmd(app *app) *cobra.Command {
	var transcriptPath string

	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Render the sanction letter from an exported transcript",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transcript, err := app.transcripts.Load(cmd.Context(), transcriptPath)
			if err != nil {
				return fmt.Errorf("load transcript: %w", err)
			}

			path, err := app.letterRenderer.Render(cmd.Context(), transcript.Record)
			if err != nil {
				if errors.Is(err, domain.ErrNotApproved) {
					return fmt.Errorf("transcript records status %q: %w", transcript.Record.Status, domain.ErrNotApproved)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sanction letter saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "Path to a transcript exported with /save")
	_ = cmd.MarkFlagRequired("transcript")

	return cmd
}
