package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/iaus/report"
	"github.com/lixenwraith/iaus/vmath"
)

var curveFlags struct {
	curve   string
	preset  string
	m, k    float64
	c, b    float64
	samples int
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sample a response curve over [0,1]",
	Example: "  iaus curve --curve logistic --preset critical_detector\n" +
		"  iaus curve --curve polynomial --m 1 --k 2 --samples 21",
	RunE: runCurve,
}

func init() {
	f := curveCmd.Flags()
	f.StringVar(&curveFlags.curve, "curve", "linear", "Curve: linear, polynomial, logistic, logit, parabolic")
	f.StringVar(&curveFlags.preset, "preset", "", "Named parameter preset ("+strings.Join(vmath.PresetNames(), ", ")+")")
	f.Float64Var(&curveFlags.m, "m", 1, "Slope")
	f.Float64Var(&curveFlags.k, "k", 1, "Exponent or amplitude")
	f.Float64Var(&curveFlags.c, "c", 0, "Horizontal shift")
	f.Float64Var(&curveFlags.b, "b", 0, "Vertical shift")
	f.IntVar(&curveFlags.samples, "samples", 11, "Sample count")
}

func runCurve(cmd *cobra.Command, _ []string) error {
	ct, ok := vmath.ParseCurveType(strings.ToLower(curveFlags.curve))
	if !ok {
		return fmt.Errorf("unknown curve %q", curveFlags.curve)
	}
	p := vmath.CurveParams{M: curveFlags.m, K: curveFlags.k, C: curveFlags.c, B: curveFlags.b}
	if curveFlags.preset != "" {
		if p, ok = vmath.PresetByName(curveFlags.preset); !ok {
			return fmt.Errorf("unknown preset %q", curveFlags.preset)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Curve(ct, p, curveFlags.samples, tableMode()))
	return nil
}
