package main

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpzteam/students/pkg/client/students"
)

func parseFilter(pairs []string) (url.Values, error) {
	filter := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || len(key) == 0 {
			return nil, errors.Errorf("invalid filter %q, expected key=value", pair)
		}
		filter.Add(key, value)
	}
	return filter, nil
}

func makeUpdateCommand() *cobra.Command {
	flags := &fieldFlags{}
	var filters []string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(filters)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			student, err := client.UpdateStudent(cmd.Context(), args[0], filter, flags.patch(cmd))
			if students.IsNotFound(err) {
				log.Warn("No student matched", zap.String("id", args[0]), zap.Strings("filter", filters))
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, student)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Extra key=value match, repeatable")

	return cmd
}
