// Package cmd contains the catalogd command definitions.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/stagecraft/catalogd/browser"
	"github.com/stagecraft/catalogd/cli"
	"github.com/stagecraft/catalogd/config"
	"github.com/stagecraft/catalogd/host/simhost"
	"github.com/stagecraft/catalogd/internal/daemon/dispatch"
	"github.com/stagecraft/catalogd/internal/daemon/pidfile"
	"github.com/stagecraft/catalogd/internal/daemon/server"
	"github.com/stagecraft/catalogd/logging"
	"github.com/stagecraft/catalogd/pkg/paths"
	"github.com/stagecraft/catalogd/version"
)

// NewDaemonCmd returns the daemon command with subcommands.
func NewDaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Catalog command daemon",
		Long:  "Serves catalog navigation commands to remote callers over websocket.",
	}

	cmd.AddCommand(newDaemonStartCmd())
	cmd.AddCommand(newDaemonStopCmd())
	cmd.AddCommand(newDaemonStatusCmd())

	return cmd
}

func newDaemonStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the daemon",
		Long:  "Start the catalogd daemon in foreground mode.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			if opts.Verbose {
				// Component loggers read the level from the environment when
				// created; set it before any of them exist.
				os.Setenv("CATALOGD_LOG_LEVEL", "debug")
			}

			logger := cli.GetLogger(cmd)
			pidPath := paths.PidFilePath()

			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Catalog.Snapshot == "" {
				return fmt.Errorf("catalog.snapshot must be configured: the standalone daemon needs a catalog to serve")
			}

			if err := paths.EnsureDirs(); err != nil {
				return fmt.Errorf("failed to create state directories: %w", err)
			}

			// 1. Acquire Lock
			if err := pidfile.Acquire(pidPath); err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			defer func() {
				if err := pidfile.Release(pidPath); err != nil {
					logger.Errorf("Failed to release pidfile: %v", err)
				}
			}()

			// 2. Build the host view and browser
			host, err := simhost.Load(cfg.Catalog.Snapshot)
			if err != nil {
				return fmt.Errorf("failed to load catalog snapshot: %w", err)
			}

			b := browser.New(host, logging.NewLogger("browser"), limitsFromConfig(cfg))
			b.SetHotswapClearAfterLoad(cfg.Hotswap.ClearAfterLoad)

			table := dispatch.New(b, cfg.Defaults, logging.NewLogger("dispatch"))

			// 3. Setup Server with command table
			srv := server.New(logger)
			srv.SetTable(table)

			// 4. Watch the config file for live limit/preference changes
			if configPath := resolveConfigPath(opts.ConfigFile); configPath != "" {
				watcher, err := config.NewWatcher(configPath, 500*time.Millisecond,
					logging.NewLogger("config-watcher"),
					func(updated *config.Config) {
						b.SetLimits(limitsFromConfig(updated))
						b.SetHotswapClearAfterLoad(updated.Hotswap.ClearAfterLoad)
						table.SetDefaults(updated.Defaults)
					})
				if err != nil {
					logger.WithError(err).Warn("Config watching disabled")
				} else {
					defer watcher.Close()
				}
			}

			// 5. Handle Signals
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			go func() {
				<-stop
				logger.Info("Received stop signal")

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Errorf("Server shutdown error: %v", err)
				}

				// Explicitly release pidfile before exit in signal handler
				_ = pidfile.Release(pidPath)
				os.Exit(0)
			}()

			// 6. Start Server (Blocking)
			logger.WithField("pid", os.Getpid()).
				WithField("version", version.GetInfo().Short()).
				Info("Starting daemon")
			if err := srv.ListenAndServe(cfg.Listen.Addr); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}

func newDaemonStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			pidPath := paths.PidFilePath()

			running, pid, err := pidfile.IsRunning(pidPath)
			if err != nil {
				return fmt.Errorf("error checking status: %w", err)
			}

			if !running {
				fmt.Println("Daemon is not running")
				return nil
			}

			process, err := os.FindProcess(pid)
			if err != nil {
				return fmt.Errorf("failed to find process %d: %w", pid, err)
			}

			if err := process.Signal(syscall.SIGTERM); err != nil {
				return fmt.Errorf("failed to send stop signal: %w", err)
			}

			fmt.Printf("Sent SIGTERM to process %d\n", pid)
			return nil
		},
	}
}

func newDaemonStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			pidPath := paths.PidFilePath()
			running, pid, err := pidfile.IsRunning(pidPath)

			if err != nil {
				return fmt.Errorf("error: %w", err)
			}

			if running {
				fmt.Printf("Running (PID: %d)\n", pid)
			} else {
				fmt.Println("Stopped")
				os.Exit(1) // Non-zero for stopped state (useful for scripts)
			}
			return nil
		},
	}
}

// limitsFromConfig maps config limits onto browser limits.
func limitsFromConfig(cfg *config.Config) browser.Limits {
	return browser.Limits{
		PerCategoryCap: cfg.Limits.PerCategoryCap,
		TotalCap:       cfg.Limits.TotalCap,
		SearchDepth:    cfg.Limits.SearchDepth,
		ResolveDepth:   cfg.Limits.ResolveDepth,
	}
}

// resolveConfigPath returns the config file the daemon is running from, or
// "" when running on built-in defaults.
func resolveConfigPath(configFlag string) string {
	if configFlag != "" {
		return configFlag
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path, err := config.FindConfigFile(cwd)
	if err != nil {
		return ""
	}
	return path
}
