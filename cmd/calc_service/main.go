package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"calorie-calculator/internal/config"
	"calorie-calculator/internal/console"
	"calorie-calculator/internal/estimator"
	"calorie-calculator/internal/forms"
	"calorie-calculator/internal/panel"
	"calorie-calculator/internal/report"
	"calorie-calculator/internal/server"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calc_service",
		Short:         "Calorie and steps-to-calories calculators (web, API and CLI)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newCaloriesCmd(), newStepsCmd(), newShellCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page, the JSON API and metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("CONFIG_PATH")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			closeLog, err := setupLogging(cfg.Logging)
			if err != nil {
				return err
			}
			defer closeLog()

			handler, err := server.NewRouter(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Printf("%s v%s (%s)", cfg.App.Name, cfg.App.Version, cfg.App.Environment)
			return server.New(cfg.Server, handler).Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config (default $CONFIG_PATH)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides server.addr")
	return cmd
}

func newCaloriesCmd() *cobra.Command {
	f := forms.NewCalorieForm()

	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Estimate daily calorie needs (Mifflin-St Jeor)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := f.Estimate()
			if !ok {
				return report.NoResult(cmd.OutOrStdout())
			}
			if err := report.Calories(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			in, _ := f.Input()
			if level, ok := estimator.LookupActivity(in.ActivityMultiplier); ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Activity level: %s (x%s)\n", level.Label, f.ActivityLevel)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Sex, "sex", f.Sex, "male or female")
	cmd.Flags().StringVar(&f.Feet, "feet", "", "Height, feet")
	cmd.Flags().StringVar(&f.Inches, "inches", "", "Height, inches (blank = 0)")
	cmd.Flags().StringVar(&f.Weight, "weight", "", "Weight in kg")
	cmd.Flags().StringVar(&f.Age, "age", "", "Age in years")
	cmd.Flags().StringVar(&f.ActivityLevel, "activity", f.ActivityLevel, "Activity multiplier: "+activityChoices())
	return cmd
}

func newStepsCmd() *cobra.Command {
	f := forms.NewStepsForm()

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Estimate calories burned walking a number of steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := f.Estimate()
			if !ok {
				return report.NoResult(cmd.OutOrStdout())
			}
			in, _ := f.Input()
			return report.Steps(cmd.OutOrStdout(), in.StepCount, out)
		},
	}
	cmd.Flags().StringVar(&f.Steps, "steps", "", "Number of steps")
	cmd.Flags().StringVar(&f.Weight, "weight", "", "Weight in kg")
	cmd.Flags().StringVar(&f.Height, "height", "", "Height in meters")
	cmd.Flags().StringVar(&f.Pace, "pace", f.Pace, "Walking pace speed: "+paceChoices())
	return cmd
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive calculator panels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.New(panel.NewShell(), cmd.OutOrStdout()).Run(cmd.InOrStdin())
		},
	}
}

func setupLogging(cfg config.LoggingConfig) (func(), error) {
	switch cfg.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return func() {
			log.SetOutput(os.Stderr)
			_ = f.Close()
		}, nil
	default:
		log.SetOutput(os.Stderr)
	}
	return func() {}, nil
}

func activityChoices() string {
	opts := make([]string, 0, len(estimator.ActivityLevels))
	for _, a := range estimator.ActivityLevels {
		opts = append(opts, strconv.FormatFloat(a.Multiplier, 'f', -1, 64)+" ("+a.Label+")")
	}
	return strings.Join(opts, ", ")
}

func paceChoices() string {
	opts := make([]string, 0, len(estimator.Paces))
	for _, p := range estimator.Paces {
		opts = append(opts, strconv.FormatFloat(p.Speed, 'f', -1, 64)+" ("+p.Label+")")
	}
	return strings.Join(opts, ", ")
}
