package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vdobler/scales"
	"github.com/vdobler/scales/config"
	"github.com/vdobler/scales/data"
	"github.com/vdobler/scales/grid"
)

var resolveFlags struct {
	options    string
	data       string
	config     string
	width      float64
	height     float64
	groupField string
	keyField   string
	valueField string
	grid       bool
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print axis roles, orientation and domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.OutOrStdout())
	},
}

func init() {
	f := resolveCmd.Flags()
	f.StringVar(&resolveFlags.options, "options", "", "chart options (YAML or JSON)")
	f.StringVar(&resolveFlags.data, "data", "", "display records (YAML or JSON list)")
	f.StringVar(&resolveFlags.config, "config", "", "defaults file (padding_ratio, ticks.x, ticks.y, time_layouts)")
	f.Float64Var(&resolveFlags.width, "width", 1, "pixel width of the horizontal axes")
	f.Float64Var(&resolveFlags.height, "height", 1, "pixel height of the vertical axes")
	f.StringVar(&resolveFlags.groupField, "group", data.DefaultGroupField, "field naming the series")
	f.StringVar(&resolveFlags.keyField, "key", data.DefaultKeyField, "field stacked values share")
	f.StringVar(&resolveFlags.valueField, "value", data.DefaultValueField, "field holding stacked values")
	f.BoolVar(&resolveFlags.grid, "grid", false, "also print the grid lines of the main axes")
	_ = resolveCmd.MarkFlagRequired("options")
	_ = resolveCmd.MarkFlagRequired("data")
}

func runResolve(w io.Writer) error {
	defaults, err := loadDefaults(resolveFlags.config)
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(resolveFlags.options)
	if err != nil {
		return errors.Wrap(err, "reading options")
	}
	opts, err := scales.ParseOptions(buf)
	if err != nil {
		return err
	}

	buf, err = os.ReadFile(resolveFlags.data)
	if err != nil {
		return errors.Wrap(err, "reading data")
	}
	table, err := data.Decode(buf)
	if err != nil {
		return err
	}
	table.GroupField = resolveFlags.groupField
	table.KeyField = resolveFlags.keyField
	table.ValueField = resolveFlags.valueField

	svc := scales.New(scales.NewModel(opts, table), defaults,
		scales.WithLogger(log),
		scales.WithRange(scales.Bottom, scales.Interval{Min: 0, Max: resolveFlags.width}),
		scales.WithRange(scales.Top, scales.Interval{Min: 0, Max: resolveFlags.width}),
		scales.WithRange(scales.Left, scales.Interval{Min: resolveFlags.height, Max: 0}),
		scales.WithRange(scales.Right, scales.Interval{Min: resolveFlags.height, Max: 0}),
	)
	// Per-axis failures are reported below, next to the axis.
	if err := svc.Update(); err != nil {
		log.Debugw("update incomplete", "error", err)
	}

	fmt.Fprintf(w, "domain axis:  %s\n", svc.DomainAxisPosition())
	fmt.Fprintf(w, "range axis:   %s\n", svc.RangeAxisPosition())
	fmt.Fprintf(w, "orientation:  %s\n", svc.Orientation())
	for _, p := range scales.Positions {
		st, ok := svc.ScaleTypeAt(p)
		if !ok {
			continue
		}
		if sc := svc.ScaleAt(p); sc != nil {
			fmt.Fprintf(w, "%-7s %-7s %s\n", p, st, sc.Domain())
			continue
		}
		fmt.Fprintf(w, "%-7s %-7s error: %v\n", p, st, svc.Err(p))
	}

	if resolveFlags.grid {
		g := grid.New(svc)
		printLines(w, "x grid:", g.X)
		printLines(w, "y grid:", g.Y)
	}
	return nil
}

func printLines(w io.Writer, title string, lines []grid.Line) {
	fmt.Fprint(w, title)
	for _, l := range lines {
		if l.Minor {
			fmt.Fprintf(w, " (%.4g)", l.Pos)
			continue
		}
		fmt.Fprintf(w, " %.4g", l.Pos)
	}
	fmt.Fprintln(w)
}

func loadDefaults(path string) (config.Defaults, error) {
	if path == "" {
		return config.Load(config.New())
	}
	return config.LoadFile(path)
}
