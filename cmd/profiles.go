package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/store"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect learner profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all learner profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closer, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closer()

		learners := repo.List(context.Background())
		if len(learners) == 0 {
			fmt.Println("No learner profiles.")
			return nil
		}

		fmt.Printf("%-12s  %-16s  %-4s  %-18s  %-20s  %s\n",
			"ID", "Name", "Age", "Language", "Style", "Lessons")
		fmt.Println(strings.Repeat("─", 90))
		for _, l := range learners {
			fmt.Printf("%-12s  %-16s  %-4d  %-18s  %-20s  %d\n",
				l.ID, l.Name, l.Age, l.NativeLanguage, l.CognitiveStyle, len(l.Library))
		}
		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one learner profile in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closer, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closer()

		learner, ok := repo.Get(context.Background(), args[0])
		if !ok {
			return fmt.Errorf("learner %q not found", args[0])
		}

		fmt.Printf("ID:              %s\n", learner.ID)
		fmt.Printf("Name:            %s\n", learner.Name)
		fmt.Printf("Age:             %d\n", learner.Age)
		fmt.Printf("Native language: %s\n", learner.NativeLanguage)
		fmt.Printf("Culture:         %s\n", learner.Culture)
		fmt.Printf("Cognitive style: %s\n", learner.CognitiveStyle)
		fmt.Printf("Interests:       %s\n", strings.Join(learner.Interests, ", "))
		fmt.Printf("Voice:           %s\n", learner.VoicePreference)
		fmt.Printf("Saved lessons:   %d\n", len(learner.Library))
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a learner profile and its saved lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if err := repo.Delete(ctx, learner.ID); err != nil {
			return fmt.Errorf("delete learner: %w", err)
		}
		fmt.Printf("Deleted %s (%s).\n", learner.Name, learner.ID)
		return nil
	},
}

// openRepo opens the store and returns the profile repository plus a
// cleanup function.
func openRepo(cmd *cobra.Command) (*profile.Repo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return profile.NewRepo(st.Records()), func() { st.Close() }, nil
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
