package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/popsim/internal/config"
	"github.com/san-kum/popsim/internal/driver"
	"github.com/san-kum/popsim/internal/export"
	"github.com/san-kum/popsim/internal/model"
	"github.com/san-kum/popsim/internal/tui"
)

var (
	configFile string
	preset     string
	speed      int
	dt         float64
	timeStep   float64
	paramFlags []string
	ticks      int
	format     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "popsim",
		Short: "population dynamics simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view with the default model.
			return runLive(cmd, []string{string(model.Logistic)})
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a fixed number of ticks headless",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", 200, "number of ticks to run")
	runCmd.Flags().StringVar(&format, "format", "plot", "output format: plot, table, csv, json")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "interactive live view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list supported models",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tVARIABLES\tDESCRIPTION")
			for _, kind := range model.Kinds() {
				m, err := model.Get(kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", kind, strings.Join(m.Labels(), ","), model.Describe(kind))
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, modelsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "speed 1-100 (tick interval = max(50, 150-speed) ms)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "internal integration step")
	cmd.Flags().Float64Var(&timeStep, "time-step", config.DefaultTimeStep, "visualization time step")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "parameter override, name=value (repeatable)")
}

// buildConfig merges, lowest to highest precedence: defaults, preset,
// config file, CLI flags.
func buildConfig(cmd *cobra.Command, mdl string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = mdl

	if preset != "" {
		p := config.GetPreset(mdl, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mdl))
		}
		cfg.Dt = p.Dt
		cfg.TimeStep = p.TimeStep
		for name, v := range p.Params {
			cfg.Params[name] = v
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("speed") {
			cfg.Speed = fileCfg.Speed
		}
		if !cmd.Flags().Changed("dt") && fileCfg.Dt != 0 {
			cfg.Dt = fileCfg.Dt
		}
		if !cmd.Flags().Changed("time-step") && fileCfg.TimeStep != 0 {
			cfg.TimeStep = fileCfg.TimeStep
		}
		for name, v := range fileCfg.Params {
			cfg.Params[name] = v
		}
	}

	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time-step") {
		cfg.TimeStep = timeStep
	}
	for _, pf := range paramFlags {
		name, val, ok := strings.Cut(pf, "=")
		if !ok {
			return nil, fmt.Errorf("bad --param %q, want name=value", pf)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --param %q: %w", pf, err)
		}
		cfg.Params[name] = v
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	mdl := string(model.Logistic)
	if len(args) > 0 {
		mdl = args[0]
	} else if configFile != "" {
		if fileCfg, err := config.Load(configFile); err == nil && fileCfg.Model != "" {
			mdl = fileCfg.Model
		}
	}
	cfg, err := buildConfig(cmd, mdl)
	if err != nil {
		return err
	}
	params, err := cfg.BuildParams()
	if err != nil {
		return err
	}
	return tui.Run(cfg.Kind(), params, cfg.Speed)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	params, err := cfg.BuildParams()
	if err != nil {
		return err
	}

	drv, err := driver.New(cfg.Kind(), func() model.Params { return params })
	if err != nil {
		return err
	}
	drv.Start()

	rejected := 0
	for i := 0; i < ticks; i++ {
		if ok, _ := drv.Tick(); !ok {
			rejected++
		}
	}
	drv.Pause()

	m := drv.Model()
	traj := drv.Trajectory()

	switch format {
	case "csv":
		return export.WriteCSV(os.Stdout, m, traj)
	case "json":
		return export.WriteJSON(os.Stdout, m, params, traj)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\t"+strings.Join(m.Labels(), "\t"))
		for _, pt := range traj {
			row := fmt.Sprintf("%.3f", pt.Time)
			for _, v := range pt.State {
				row += fmt.Sprintf("\t%.4f", v)
			}
			fmt.Fprintln(w, row)
		}
		return w.Flush()
	case "plot":
		fmt.Printf("%s: %d ticks, %d points kept", cfg.Kind(), ticks, len(traj))
		if rejected > 0 {
			fmt.Printf(", %d rejected (non-finite)", rejected)
		}
		fmt.Println()
		for i, label := range m.Labels() {
			series := make([]float64, len(traj))
			for j, pt := range traj {
				series[j] = pt.State[i]
			}
			graph := asciigraph.Plot(series,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(label+" vs time"),
			)
			fmt.Println(graph)
			fmt.Println()
		}
		last := traj[len(traj)-1]
		fmt.Printf("final t=%.2f", last.Time)
		for i, label := range m.Labels() {
			fmt.Printf("  %s=%.4f", label, last.State[i])
		}
		fmt.Println()
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
