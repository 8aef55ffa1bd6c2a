package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pulsekit/pulse/hub"
	"github.com/pulsekit/pulse/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and print each reloaded revision",
	Long: `Watch the config file and print each reloaded revision.

Configuration revisions flow through a notification hub like any other
observable state: the watcher publishes every successfully loaded revision
and this command subscribes to them. Edit the config file in another
terminal to see reloads land. A revision that fails validation is skipped
and the last good one kept. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		return fmt.Errorf("no config file found; create one at %s first", config.ConfigFile())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	out := cmd.OutOrStdout()
	revisions := hub.New[*config.Config]()
	revisions.SubscribePush(func(c *config.Config) error {
		fmt.Fprintln(out, headerStyle.Render("config revision"))
		fmt.Fprintf(out, "  hub.policy: %s\n", c.Hub.Policy)
		fmt.Fprintf(out, "  logging.level: %s\n", c.Logging.Level)
		fmt.Fprintf(out, "  demo.subscribers: %v\n", c.Demo.Subscribers)
		return nil
	})

	watcher, err := config.NewWatcher(path, revisions, logger)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("watching %s (Ctrl-C to stop)", path)))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
