package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/contextlens/internal/transfer"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all profiles and saved lessons to a JSON file",
	Long: "Writes every learner profile (including libraries) and the teacher profile " +
		"as a single JSON document. With no argument a dated file name is used; " +
		"pass \"-\" to write to stdout.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closer, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closer()

		data, err := transfer.NewCodec(repo).Export(context.Background())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		path := transfer.ExportFileName(time.Now())
		if len(args) == 1 {
			path = args[0]
		}
		if path == "-" {
			_, err := os.Stdout.Write(append(data, '\n'))
			return err
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}
