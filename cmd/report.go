package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/contextlens/internal/report"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <learner-id> [entry-id]",
	Short: "Write an HTML report for a saved lesson",
	Long: "Renders a saved lesson as a self-contained HTML file. With no entry id " +
		"the learner's most recent lesson is used.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		repo, closer, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closer()

		ctx := context.Background()
		learner, ok := repo.Get(ctx, args[0])
		if !ok {
			return fmt.Errorf("learner %q not found", args[0])
		}
		if len(learner.Library) == 0 {
			return fmt.Errorf("%s has no saved lessons", learner.Name)
		}

		entry := learner.Library[0]
		if len(args) == 2 {
			found := false
			for _, e := range learner.Library {
				if e.ID == args[1] {
					entry = e
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("lesson %q not found for %s", args[1], learner.Name)
			}
		}

		lesson := report.Lesson{
			SourceText:  entry.SourceText,
			Cards:       entry.Cards,
			Learner:     learner,
			Teacher:     repo.Teacher(ctx),
			GeneratedAt: time.UnixMilli(entry.Timestamp),
		}
		html, err := report.Render(lesson)
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}

		path := output
		if path == "" {
			path = report.FileName(learner.Name, time.Now())
		}
		if err := os.WriteFile(path, html, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Report written to %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "Output file path (default: dated file name)")
}
