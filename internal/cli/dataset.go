package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/papers"
	"github.com/matzehuels/citeorder/pkg/report"
)

// datasetCommand creates the dataset command, which describes the paper
// collection.
func (c *CLI) datasetCommand() *cobra.Command {
	var (
		path      string
		showTable bool
		showPaper string
	)

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Describe the paper collection",
		Long: `Describe the paper collection: research timeline, counts and the most
cited papers. With --papers, also list every paper in a table; with --paper,
show one paper in full.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := papers.Default()
			if path != "" {
				var err error
				if ds, err = papers.Load(path); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if showPaper != "" {
				return printPaper(out, ds, showPaper)
			}
			fmt.Fprint(out, report.DatasetOverview(ds))
			if showTable {
				printNewline(out)
				fmt.Fprintln(out, papersTable(ds))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "dataset", "", "paper dataset file (TOML, default: built-in dataset)")
	cmd.Flags().BoolVar(&showTable, "papers", false, "list every paper")
	cmd.Flags().StringVar(&showPaper, "paper", "", "show the paper with this ID")
	return cmd
}

func printPaper(out io.Writer, ds *papers.Dataset, id string) error {
	p, ok := ds.Paper(id)
	if !ok {
		return errors.New(errors.ErrCodePaperNotFound, "paper %q is not in the dataset", id)
	}
	fmt.Fprintln(out, StyleTitle.Render(p.Title))
	printKeyValue(out, "ID", p.ID)
	printKeyValue(out, "Authors", p.Authors)
	printKeyValue(out, "Year", strconv.Itoa(p.Year))
	printKeyValue(out, "Venue", p.Venue)
	printKeyValue(out, "DOI", p.URL)
	for _, cited := range p.Cites {
		printKeyValue(out, "Cites", cited)
	}
	if p.Description != "" {
		printNewline(out)
		fmt.Fprintln(out, StyleDim.Render(p.Description))
	}
	return nil
}
