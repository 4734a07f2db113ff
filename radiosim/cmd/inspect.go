package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/sarchlab/radiosim/analysis"
	"github.com/sarchlab/radiosim/datarecording"
	"github.com/sarchlab/radiosim/tracing"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	table   string
	where   string
	orderBy string
	limit   int
	offset  int
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	c := &cobra.Command{
		Use:   "inspect [recording file]",
		Short: "Inspect a recording.",
		Long: "`inspect [recording file]` counts the rows of each table. " +
			"With --table, it prints the rows of a table as JSON lines.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectRecording(cmd, opts, args[0])
		},
	}

	f := c.Flags()
	f.StringVarP(&opts.table, "table", "t", "", "Table to print")
	f.StringVar(&opts.where, "where", "", "Filter, as an SQL condition")
	f.StringVar(&opts.orderBy, "order-by", "StartTime",
		"Sort, as an SQL ORDER BY clause")
	f.IntVarP(&opts.limit, "limit", "n", 20,
		"Maximum number of rows, 0 for all")
	f.IntVar(&opts.offset, "offset", 0, "Number of rows to skip")

	return c
}

func inspectRecording(
	cmd *cobra.Command,
	opts *inspectOptions,
	path string,
) error {
	_, err := os.Stat(path)
	if err != nil {
		return err
	}

	reader := datarecording.NewReader(path)
	defer reader.Close()

	tracing.MapTables(reader)
	reader.MapTable(analysis.QueueLevelTable, analysis.QueueLevelEntry{})

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if opts.table == "" {
		tables, err := reader.StoredTables(ctx)
		if err != nil {
			return err
		}

		mapped := reader.ListTables()

		for _, table := range tables {
			if !slices.Contains(mapped, table) {
				fmt.Fprintf(out, "%s: unknown table\n", table)
				continue
			}

			_, total, err := reader.Query(ctx, table,
				datarecording.QueryParams{Limit: 1})
			if err != nil {
				return fmt.Errorf("table %s: %w", table, err)
			}

			fmt.Fprintf(out, "%s: %d rows\n", table, total)
		}

		return nil
	}

	orderBy := opts.orderBy
	if opts.table == tracing.FailureTable && orderBy == "StartTime" {
		orderBy = "Time"
	}

	rows, total, err := reader.Query(ctx, opts.table, datarecording.QueryParams{
		Where:   opts.where,
		OrderBy: orderBy,
		Limit:   opts.limit,
		Offset:  opts.offset,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	for _, row := range rows {
		err = enc.Encode(row)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d rows\n", len(rows), total)

	return nil
}
