package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/wachat/internal/config"
	"github.com/zhubert/wachat/internal/logger"
)

var (
	skipConfirm bool
	resetPrefs  bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove log files and optionally saved preferences",
	Long: `Removes wachat's debug logs. With --reset the saved theme, accent color
and notification preference are removed as well.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&resetPrefs, "reset", false, "Also remove saved preferences")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, out io.Writer) error {
	logs, err := logger.LogFiles()
	if err != nil {
		return fmt.Errorf("error finding log files: %w", err)
	}

	var prefsPath string
	if resetPrefs {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("error locating config: %w", err)
		}
		if _, err := os.Stat(path); err == nil {
			prefsPath = path
		}
	}

	// Check if there's anything to clean
	if len(logs) == 0 && prefsPath == "" {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	// Print summary of what will be cleaned
	fmt.Fprintln(out, "This will clean:")
	if len(logs) > 0 {
		fmt.Fprintf(out, "  - %d log file(s)\n", len(logs))
	}
	if prefsPath != "" {
		fmt.Fprintf(out, "  - saved preferences in %s\n", prefsPath)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	prefsCleared := false
	if prefsPath != "" {
		if err := os.Remove(prefsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing preferences: %v\n", err)
		} else {
			prefsCleared = true
		}
	}

	// Print results
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	if prefsCleared {
		fmt.Fprintln(out, "  - preferences reset")
	}

	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
