package cmd

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/wachat/internal/app"
	"github.com/zhubert/wachat/internal/config"
	"github.com/zhubert/wachat/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	noNotify              bool
	configDir             string
	deliveryDelay         time.Duration
	readDelay             time.Duration
	replyDelay            time.Duration
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "wachat",
	Short: "WhatsApp-style chat in the terminal",
	Long: `wachat is a terminal chat client with a WhatsApp look and feel.
Conversations are local demo data. Sent messages are delivered and read on a
simulated schedule, and Sarah answers the first conversation with a scripted reply.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for config.json (default ~/.wachat)")

	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Never show desktop notifications")
	rootCmd.Flags().DurationVar(&deliveryDelay, "delivery-delay", 0, "Time until a sent message is delivered (default 1s)")
	rootCmd.Flags().DurationVar(&readDelay, "read-delay", 0, "Time until a sent message is read (default 2.5s)")
	rootCmd.Flags().DurationVar(&replyDelay, "reply-delay", 0, "Time until the scripted reply arrives (default 5s)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
	if configDir != "" {
		os.Setenv(config.DirEnv, configDir)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("wachat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("wachat %s\n", version)
}

// buildOptions applies the command line to the default app options.
func buildOptions() (app.Options, error) {
	opts := app.DefaultOptions(version)
	opts.DisableNotifications = noNotify

	delays := []struct {
		name  string
		value time.Duration
		dst   *time.Duration
	}{
		{"--delivery-delay", deliveryDelay, &opts.Chat.DeliveryDelay},
		{"--read-delay", readDelay, &opts.Chat.ReadDelay},
		{"--reply-delay", replyDelay, &opts.Chat.ReplyDelay},
	}
	for _, d := range delays {
		if d.value < 0 {
			return opts, fmt.Errorf("%s cannot be negative", d.name)
		}
		if d.value > 0 {
			*d.dst = d.value
		}
	}
	return opts, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m := app.New(cfg, opts)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
