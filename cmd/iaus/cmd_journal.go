package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/iaus/journal"
	"github.com/lixenwraith/iaus/report"
)

var journalPath string

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the runs stored in a journal",
	RunE:  runRuns,
}

var diffCmd = &cobra.Command{
	Use:   "diff <run-a> <run-b>",
	Short: "Report the first evaluation where two journal runs disagree",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	for _, c := range []*cobra.Command{runsCmd, diffCmd} {
		c.Flags().StringVar(&journalPath, "journal", "iaus.db", "SQLite journal path")
	}
}

func runRuns(cmd *cobra.Command, _ []string) error {
	j, err := journal.Open(journalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.Runs()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintf(out, "No runs in %s\n", journalPath)
		return nil
	}
	fmt.Fprintln(out, report.Runs(runs, tableMode()))
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	j, err := journal.Open(journalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	d, err := j.Compare(args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if d == nil {
		fmt.Fprintln(out, "runs are identical")
		return nil
	}
	fmt.Fprintln(out, d)
	return fmt.Errorf("%w at tick %d", ErrNondeterministic, d.Tick)
}
