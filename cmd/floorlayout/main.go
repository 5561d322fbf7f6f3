package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rehmanul/The-Ultimate-CAD-DXF-File-Processor-sub004/internal/server"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "floorlayout",
})

func main() {
	var optionsPath string

	rootCmd := &cobra.Command{
		Use:   "floorlayout",
		Short: "Floor-plan layout engine: zones, unit placement, corridors, compliance",
	}
	rootCmd.PersistentFlags().StringVarP(&optionsPath, "options", "o", "", "engine options TOML file")

	rootCmd.AddCommand(solveCmd(&optionsPath))
	rootCmd.AddCommand(zonesCmd(&optionsPath))
	rootCmd.AddCommand(checkCmd(&optionsPath))
	rootCmd.AddCommand(mixCmd(&optionsPath))
	rootCmd.AddCommand(serveCmd(&optionsPath))

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func solveCmd(optionsPath *string) *cobra.Command {
	var strategy, mix string
	var seed int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "solve [plan-path]",
		Short: "Run the full pipeline: zones, placement, corridors, compliance",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := loadEngineOptions(*optionsPath)
			if err != nil {
				return err
			}
			return runSolve(args[0], opts, strategy, mix, seed, asJSON)
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "corridor strategy: rowgap | advanced | spine")
	cmd.Flags().StringVarP(&mix, "mix", "m", "", "unit mix, e.g. S=10,M=25")
	cmd.Flags().Int64Var(&seed, "seed", 0, "placement seed (same seed replays the layout)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full solution as JSON")
	return cmd
}

func zonesCmd(optionsPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "zones [plan-path]",
		Short: "Detect placeable zones and print the empty-plan analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := loadEngineOptions(*optionsPath)
			if err != nil {
				return err
			}
			return runZones(args[0], opts, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit zones and analysis as JSON")
	return cmd
}

func checkCmd(optionsPath *string) *cobra.Command {
	var strategy, mix string
	var seed int64

	cmd := &cobra.Command{
		Use:   "check [plan-path]",
		Short: "Run the pipeline and report compliance violations only",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := loadEngineOptions(*optionsPath)
			if err != nil {
				return err
			}
			return runCheck(args[0], opts, strategy, mix, seed)
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "corridor strategy: rowgap | advanced | spine")
	cmd.Flags().StringVarP(&mix, "mix", "m", "", "unit mix, e.g. S=10,M=25")
	cmd.Flags().Int64Var(&seed, "seed", 0, "placement seed")
	return cmd
}

func mixCmd(optionsPath *string) *cobra.Command {
	var mix string
	var seed int64

	cmd := &cobra.Command{
		Use:   "mix [plan-path]",
		Short: "Place a unit mix and print the deviation report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := loadEngineOptions(*optionsPath)
			if err != nil {
				return err
			}
			return runMix(args[0], opts, mix, seed)
		},
	}
	cmd.Flags().StringVarP(&mix, "mix", "m", "", "unit mix, e.g. S=10,M=25")
	cmd.Flags().Int64Var(&seed, "seed", 0, "placement seed")
	return cmd
}

func serveCmd(optionsPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [plan-path]",
		Short: "Start the local API server for a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := loadEngineOptions(*optionsPath)
			if err != nil {
				return err
			}
			engine, err := serverEngine(opts)
			if err != nil {
				return err
			}
			srv := server.New(server.Config{
				PlanPath: args[0],
				Port:     port,
				Logger:   logger,
				Engine:   engine,
			})
			return srv.Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
