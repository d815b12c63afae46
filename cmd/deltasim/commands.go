package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talgya/delta-tetrahedron/internal/growth"
	"github.com/talgya/delta-tetrahedron/internal/render"
	"github.com/talgya/delta-tetrahedron/internal/sweep"
)

func evalCmd(opts *options) *cobra.Command {
	var format, style string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compute Δ, G and the concept label",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := evaluate(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch format {
			case "text":
				_, err = io.WriteString(out, render.Text(m))
			case "pretty":
				var s string
				s, err = render.Pretty(m, style)
				if err == nil {
					_, err = io.WriteString(out, s)
				}
			case "json":
				err = writeJSON(out, struct {
					Metrics   growth.DerivedMetrics `json:"metrics"`
					Breakdown render.Breakdown      `json:"breakdown"`
				}{m, render.NewBreakdown(m)})
			default:
				err = fmt.Errorf("unknown format %q (text, pretty, json)", format)
			}
			return err
		},
	}

	addInputFlags(cmd.Flags(), opts)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, pretty, json")
	cmd.Flags().StringVar(&style, "style", "", "Markdown style for pretty output (dark, light, notty)")
	return cmd
}

func curveCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the growth curve samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := evaluate(cmd, opts)
			if err != nil {
				return err
			}
			switch format {
			case "csv":
				return render.WriteCurveCSV(cmd.OutOrStdout(), m)
			case "chart":
				return writeJSON(cmd.OutOrStdout(), render.NewChart(m))
			default:
				return fmt.Errorf("unknown format %q (csv, chart)", format)
			}
		},
	}

	addInputFlags(cmd.Flags(), opts)
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv, chart")
	return cmd
}

func svgCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Print the tetrahedron diagram markup",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := evaluate(cmd, opts)
			if err != nil {
				return err
			}
			svg, err := render.TetrahedronSVG(m)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), svg)
			return err
		},
	}
	addInputFlags(cmd.Flags(), opts)
	return cmd
}

func sweepCmd(opts *options) *cobra.Command {
	grid := sweep.DefaultGrid()

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate Δ and G over an effort × resources grid (CSV)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			eng, err := cfg.NewEngine()
			if err != nil {
				return err
			}
			cells, err := sweep.Run(cmd.Context(), eng, cfg.Params(), grid)
			if err != nil {
				return err
			}
			return sweep.WriteCSV(cmd.OutOrStdout(), cells)
		},
	}

	addInputFlags(cmd.Flags(), opts)
	cmd.Flags().IntVar(&grid.Min, "min", grid.Min, "Lowest effort/resources level")
	cmd.Flags().IntVar(&grid.Max, "max", grid.Max, "Highest effort/resources level")
	cmd.Flags().IntVar(&grid.Step, "step", grid.Step, "Distance between levels")
	cmd.Flags().IntVar(&grid.Workers, "workers", 0, "Concurrent evaluations (0 = GOMAXPROCS)")
	return cmd
}

func conceptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concepts",
		Short: "List the concept keywords, scalars and Latin labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEYWORD\tKAPPA\tLABEL")
			for _, c := range growth.Concepts() {
				fmt.Fprintf(tw, "%s\t%g\t%s\n", c.Keyword, c.Kappa, c.Label)
			}
			fmt.Fprintf(tw, "(other)\t-\t%s\n", growth.DefaultLabel)
			return tw.Flush()
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
