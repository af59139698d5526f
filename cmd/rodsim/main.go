package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/rodsim/internal/clock"
	"github.com/san-kum/rodsim/internal/config"
	"github.com/san-kum/rodsim/internal/metrics"
	"github.com/san-kum/rodsim/internal/physics"
	"github.com/san-kum/rodsim/internal/scenario"
	"github.com/san-kum/rodsim/internal/store"
	"github.com/san-kum/rodsim/internal/tui"
	"github.com/san-kum/rodsim/internal/viz"
)

var (
	configFile string
	preset     string
	material   string
	power      float64
	length     float64
	diameter   float64
	rate       float64
	heaterOff  bool
	logLevel   string
	// plot
	seconds   float64
	dt        float64
	interval  float64
	plotWidth int
	format    string
)

// main registers the rodsim commands. With no subcommand the reference
// scenario runs in real time and prints the measurement table.
func main() {
	rootCmd := &cobra.Command{
		Use:               "rodsim",
		Short:             "heated rod thermal expansion simulator",
		PersistentPreRunE: setupLogging,
		RunE:              runRealtime,
		SilenceUsage:      true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "scenario file (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset scenario")
	pf.StringVar(&material, "material", config.DefaultMaterial, "material name")
	pf.Float64Var(&power, "power", config.DefaultPower, "heater power (W)")
	pf.Float64Var(&length, "length", config.DefaultLength, "rod length at 293 K (m)")
	pf.Float64Var(&diameter, "diameter", config.DefaultDiameter, "rod diameter at 293 K (m)")
	pf.Float64Var(&rate, "rate", config.DefaultRate, "maximum ticks per second")
	pf.BoolVar(&heaterOff, "heater-off", false, "start with the heater switched off")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run in real time and print the measurement table",
		RunE:  runRealtime,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive view with heater controls",
		RunE:  runLive,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "advance without pacing and plot the results",
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&seconds, "seconds", config.DefaultPlotSeconds, "simulated seconds")
	plotCmd.Flags().Float64Var(&dt, "dt", 1.0/config.DefaultRate, "timestep (s)")
	plotCmd.Flags().Float64Var(&interval, "interval", config.DefaultSampleInterval, "sample interval (s)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().StringVar(&format, "format", "chart", "output format (chart, json, csv)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list known materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range physics.ElementNames() {
				el := physics.Elements[name]
				fmt.Printf("  %-10s density=%-8g specific_heat=%-10.4f expansion=%g\n",
					name, el.Density, el.SpecificHeat(), el.ExpansionCoefficient)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-20s %s %.2fm x %.3fm, %.0f W\n",
					name, p.Material.Name, p.Rod.Length, p.Rod.Diameter, p.Heater.Power)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "scenario file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved scenario as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "rodsim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			log.WithField("path", path).Info("scenario written")
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, materialsCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	name := logLevel
	if name == "" {
		name = config.DefaultLogLevel
	}
	return setLogLevel(name)
}

func setLogLevel(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// resolveConfig loads the scenario once and applies its log level.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		if err := setLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// loadConfig resolves the scenario: preset or file first, then explicitly set
// flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("material") {
		cfg.Material = config.MaterialConfig{Name: material}
	}
	if flags.Changed("power") {
		cfg.Heater.Power = power
	}
	if flags.Changed("length") {
		cfg.Rod.Length = length
	}
	if flags.Changed("diameter") {
		cfg.Rod.Diameter = diameter
	}
	if flags.Changed("rate") {
		cfg.Loop.Rate = rate
	}
	if flags.Changed("heater-off") {
		cfg.Heater.On = !heaterOff
	}
	if flags.Changed("seconds") {
		cfg.Plot.Seconds = seconds
	}
	if flags.Changed("interval") {
		cfg.Plot.SampleInterval = interval
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRealtime(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := scenario.Build(cfg, clock.Real{}, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("rate", sc.Sim.Rate()).Info("simulation started")
	err = sc.Sim.Run(ctx)
	log.WithFields(log.Fields{
		"elapsed": sc.Sim.Elapsed(),
		"ticks":   sc.Sim.Ticks(),
	}).Info("simulation stopped")

	if errors.Is(err, context.Canceled) {
		return sc.Table.Err()
	}
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// the live view owns the terminal; keep the log quiet
	log.SetLevel(log.WarnLevel)

	sc, err := scenario.Build(cfg, clock.Real{}, nil)
	if err != nil {
		return err
	}
	return tui.Run(sc)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", dt)
	}
	if format != "chart" && format != "json" && format != "csv" {
		return fmt.Errorf("unknown format: %s", format)
	}

	sc, err := scenario.Build(cfg, clock.Real{}, nil)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder(sc.Rod, cfg.Plot.SampleInterval)
	sc.Sim.AddObserver(rec)

	steps := int(cfg.Plot.Seconds/dt + 0.5)
	log.WithFields(log.Fields{
		"steps": steps,
		"dt":    dt,
	}).Info("advancing")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := sc.Sim.Advance(ctx, steps, dt); err != nil {
		return err
	}

	switch format {
	case "json":
		return store.ExportJSON(os.Stdout, cfg, dt, rec)
	case "csv":
		return store.ExportCSV(os.Stdout, rec)
	default:
		fmt.Println(viz.RenderRecording(rec, plotWidth))
		return nil
	}
}
