package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func makeListCommand() *cobra.Command {
	var letter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			students, err := client.ListStudents(cmd.Context(), letter)
			if err != nil {
				return err
			}
			log.Debug("Listed students", zap.Int("count", len(students)))
			return render(cmd.OutOrStdout(), output, students)
		},
	}
	cmd.Flags().StringVar(&letter, "letter", "", "First letters of the name")

	return cmd
}
