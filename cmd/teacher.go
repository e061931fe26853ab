package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var teacherCmd = &cobra.Command{
	Use:   "teacher",
	Short: "Show the teacher profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closer, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closer()

		t := repo.Teacher(context.Background())
		fmt.Printf("Name:             %s\n", t.Name)
		fmt.Printf("Teaching style:   %s\n", t.TeachingStyle)
		fmt.Printf("Comfort subjects: %s\n", strings.Join(t.ComfortSubjects, ", "))
		fmt.Printf("Tone:             %s\n", t.CommunicationTone)
		return nil
	},
}
