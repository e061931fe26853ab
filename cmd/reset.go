package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/contextlens/internal/profile"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all profiles to the built-in samples",
	Long: "Replaces every learner profile and the teacher profile with the built-in " +
		"sample data. Saved lessons are lost. Requires --yes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This erases all profiles and saved lessons. Re-run with --yes to confirm.")
			return nil
		}

		repo, closer, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closer()

		ctx := context.Background()
		if err := repo.SaveAll(ctx, profile.SeedLearners()); err != nil {
			return fmt.Errorf("reset profiles: %w", err)
		}
		if err := repo.SaveTeacher(ctx, profile.DefaultTeacher()); err != nil {
			return fmt.Errorf("reset teacher profile: %w", err)
		}
		fmt.Println("Profiles reset to samples.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
