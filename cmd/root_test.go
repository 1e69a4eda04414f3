package cmd

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/wachat/internal/chat"
	"github.com/zhubert/wachat/internal/config"
	"github.com/zhubert/wachat/internal/logger"
)

func TestMain(m *testing.M) {
	// Disable logging during tests to avoid polluting /tmp/wachat-debug.log
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"no-notify", "delivery-delay", "read-delay", "reply-delay"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("config-dir") == nil {
		t.Error("--config-dir flag not found")
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestInitConfig_ConfigDir(t *testing.T) {
	orig := configDir
	defer func() { configDir = orig }()

	dir := t.TempDir()
	t.Setenv(config.DirEnv, "")
	configDir = dir
	initConfig()

	path, err := config.DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("DefaultPath() = %s, want it under %s", path, dir)
	}
}

func TestBuildOptions(t *testing.T) {
	tests := []struct {
		name                   string
		delivery, read, reply  time.Duration
		noNotify               bool
		wantErr                bool
		wantDelivery, wantRead time.Duration
		wantReply              time.Duration
	}{
		{
			name:         "defaults",
			wantDelivery: chat.DefaultDeliveryDelay,
			wantRead:     chat.DefaultReadDelay,
			wantReply:    chat.DefaultReplyDelay,
		},
		{
			name:         "overrides",
			delivery:     200 * time.Millisecond,
			read:         time.Second,
			reply:        2 * time.Second,
			noNotify:     true,
			wantDelivery: 200 * time.Millisecond,
			wantRead:     time.Second,
			wantReply:    2 * time.Second,
		},
		{
			name:    "negative",
			reply:   -time.Second,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				deliveryDelay, readDelay, replyDelay, noNotify = 0, 0, 0, false
			}()
			deliveryDelay, readDelay, replyDelay, noNotify = tt.delivery, tt.read, tt.reply, tt.noNotify

			opts, err := buildOptions()
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if opts.Chat.DeliveryDelay != tt.wantDelivery || opts.Chat.ReadDelay != tt.wantRead || opts.Chat.ReplyDelay != tt.wantReply {
				t.Errorf("delays = %v/%v/%v", opts.Chat.DeliveryDelay, opts.Chat.ReadDelay, opts.Chat.ReplyDelay)
			}
			if opts.DisableNotifications != tt.noNotify {
				t.Errorf("DisableNotifications = %v, want %v", opts.DisableNotifications, tt.noNotify)
			}
			if len(opts.Seed) != 5 {
				t.Errorf("expected the five seeded conversations, got %d", len(opts.Seed))
			}
		})
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "")
	if got := versionTemplate(); got != "wachat 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2025-01-15")
	if got := versionTemplate(); !strings.Contains(got, "commit: abc123") {
		t.Errorf("versionTemplate() = %q", got)
	}
}
