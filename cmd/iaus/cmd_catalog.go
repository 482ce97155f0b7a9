package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/iaus/report"
)

var catalogFlags struct {
	considerations bool
	yaml           bool
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the decision catalog with config overrides applied",
	RunE:  runCatalog,
}

func init() {
	f := catalogCmd.Flags()
	f.BoolVar(&catalogFlags.considerations, "considerations", false, "Also print the factor definitions")
	f.BoolVar(&catalogFlags.yaml, "yaml", false, "Print the effective configuration as YAML instead")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if catalogFlags.yaml {
		raw, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = out.Write(raw)
		return err
	}

	catalog, _, err := cfg.Apply()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, report.Catalog(catalog, tableMode()))
	if catalogFlags.considerations {
		fmt.Fprintln(out, report.Considerations(catalog, tableMode()))
	}
	return nil
}
