package main

import (
	"fmt"
	"strings"

	"github.com/Gobusters/ectolinq"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Ramsey-B/clover/pkg/models"
)

func newSegmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segments [fixture]",
		Short: "List market segments with their identifiers and member accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.load(cmd, args)
			if err != nil {
				return err
			}

			for _, segment := range graph.Catalog.Segments() {
				id, _ := graph.Catalog.IdentifierOf(segment.Name())
				members := ectolinq.Map(segment.Accounts(), func(account *models.Account) string {
					return account.Name()
				})
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", id, segment.Name(), strings.Join(members, ", ")); err != nil {
					return errors.Wrap(err, "failed to write segments")
				}
			}
			return nil
		},
	}
}
