package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tree"
)

func newTreeCmd(a *app) *cobra.Command {
	var (
		rootName   string
		unassigned string
	)

	cmd := &cobra.Command{
		Use:   "tree [fixture]",
		Short: "Print the account hierarchy with segments and sales reps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.load(cmd, args)
			if err != nil {
				return err
			}

			roots := graph.Roots
			if rootName != "" {
				root := graph.Root(rootName)
				if root == nil {
					return errors.Errorf("no top level account named '%s'", rootName)
				}
				roots = []*models.Account{root}
			}

			label := a.cfg.TreeUnassignedRep
			if cmd.Flags().Changed("unassigned") {
				label = unassigned
			}
			renderer := tree.NewRenderer(tree.WithUnassignedRep(label))

			for _, root := range roots {
				if err := renderer.Write(cmd.OutOrStdout(), root); err != nil {
					return errors.Wrap(err, "failed to write tree")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rootName, "root", "", "only print the tree under this top level account")
	cmd.Flags().StringVar(&unassigned, "unassigned", "", "text printed for accounts without a sales rep")
	return cmd
}
