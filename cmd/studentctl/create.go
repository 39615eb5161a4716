package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func makeCreateCommand() *cobra.Command {
	flags := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			student, err := client.CreateStudent(cmd.Context(), flags.fields(cmd))
			if err != nil {
				return err
			}
			log.Info("Created student", zap.String("id", student.ID.Hex()))
			return render(cmd.OutOrStdout(), output, student)
		},
	}
	flags.register(cmd)

	return cmd
}
