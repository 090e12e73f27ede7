package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/toposort"
)

// validateCommand creates the validate command, which checks a user
// supplied order against the citation graph.
func (c *CLI) validateCommand() *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "validate <id>...",
		Short: "Check that an order respects every citation",
		Long: `Check that an order respects every citation.

Pass node IDs in order, citing papers first. Every citation A -> B requires A
to appear before B; a paper involved in a citation but missing from the list
makes the order invalid.`,
		Example: `  citeorder validate climate_review_2024 microbe_interactions_2024 ...`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.OutOrStdout(), input, args)
		},
	}

	input.register(cmd)
	return cmd
}

func (c *CLI) runValidate(out io.Writer, input inputFlags, order []string) error {
	g, _, err := input.load()
	if err != nil {
		return err
	}
	valid, msg := toposort.Validate(g, order)
	if !valid {
		printError(out, "%s", msg)
		return fmt.Errorf("order is not topological")
	}
	printSuccess(out, "%s", msg)
	return nil
}
