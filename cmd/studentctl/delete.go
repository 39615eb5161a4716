package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func makeDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.DeleteStudent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res.DeletedCount == 0 {
				log.Warn("Nothing was deleted", zap.String("id", args[0]))
			}
			return render(cmd.OutOrStdout(), output, res)
		},
	}

	return cmd
}
