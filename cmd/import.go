package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/contextlens/internal/transfer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles and saved lessons from a JSON export",
	Long: "Replaces all stored learner profiles and the teacher profile with the " +
		"contents of a previously exported JSON document. Pass \"-\" to read from stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		repo, closer, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closer()

		doc, err := transfer.NewCodec(repo).Import(context.Background(), data)
		if err != nil {
			if errors.Is(err, transfer.ErrMalformedDocument) || errors.Is(err, transfer.ErrValidationFailed) {
				return fmt.Errorf("invalid export file: %w", err)
			}
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("Imported %d learner profile(s) and the teacher profile.\n", len(doc.Profiles))
		return nil
	},
}
