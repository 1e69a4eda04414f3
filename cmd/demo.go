package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/wachat/internal/demo"
	"github.com/zhubert/wachat/internal/demo/scenarios"
	"github.com/zhubert/wachat/internal/errors"
)

var (
	demoOutput     string
	demoFile       string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of wachat",
	Long: `Generate demo recordings of wachat for documentation and presentations.
Scenarios run on a virtual clock, so delivery, read receipts and the scripted
reply appear without waiting in real time.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and output to stdout (for testing)
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a scenario and output to stdout (for testing)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast [scenario]",
	Short: "Generate an asciinema cast file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemoCast,
}

func init() {
	// Add flags to subcommands that need them
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().StringVarP(&demoFile, "file", "f", "", "Load the scenario from a YAML file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default from the scenario)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default from the scenario)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(w io.Writer) {
	fmt.Fprintln(w, "Available demo scenarios:")
	fmt.Fprintln(w)
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "  %-15s %s\n", s.Name, s.Description)
	}
}

// getScenario resolves a built-in scenario by name, or the --file scenario.
func getScenario(args []string) (*demo.Scenario, error) {
	var scenario *demo.Scenario
	switch {
	case demoFile != "" && len(args) > 0:
		return nil, fmt.Errorf("give a scenario name or --file, not both")
	case demoFile != "":
		s, err := demo.Load(demoFile)
		if err != nil {
			return nil, err
		}
		scenario = s
	case len(args) == 1:
		scenario = scenarios.Get(args[0])
		if scenario == nil {
			return nil, fmt.Errorf("%w\nRun 'wachat demo list' to see available scenarios", errors.ScenarioNotFound(args[0]))
		}
	default:
		return nil, fmt.Errorf("a scenario name or --file is required")
	}

	// Override dimensions if specified
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}

	return scenario, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	executor := demo.NewExecutor(execCfg)
	return executor.Run(scenario)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	// Print frames to stdout for testing
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(w, f.Content)
	}

	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	// Determine output file
	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenario.Name + ".cast"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	opts := demo.CastOptions{
		Width:     scenario.Width,
		Height:    scenario.Height,
		Title:     "wachat: " + scenario.Description,
		Timestamp: time.Now(),
	}
	if err := demo.GenerateASCIICast(f, frames, opts); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)

	return nil
}
