package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsekit/pulse/hub"
	"github.com/pulsekit/pulse/internal/config"
	"github.com/pulsekit/pulse/internal/util"
)

var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Run the Subject/Observer notification demo",
	Long: `Run the Subject/Observer notification demo.

Display subscribers (by default a phone and a tv) watch a counter held by a
notification hub. Each state change fans out to the subscribers in
subscription order; every subscriber pulls the current value back out of the
hub when notified.

The notification policy is configurable:
  always     notify on every state change (default)
  from-zero  notify only when the previous value was zero
  on-change  notify only when the value actually changed`,
	RunE: runObserve,
}

func init() {
	rootCmd.AddCommand(observeCmd)

	observeCmd.Flags().String("policy", "", "notification policy (overrides hub.policy)")
	observeCmd.Flags().IntSlice("states", nil, "state sequence to drive (overrides demo.states)")
}

// policyByName maps a config policy name to the hub predicate.
func policyByName(name string) (hub.Policy[int], error) {
	switch name {
	case "", "always":
		return hub.Always[int](), nil
	case "from-zero":
		return hub.FromZero[int](), nil
	case "on-change":
		return hub.OnChange[int](), nil
	default:
		return nil, fmt.Errorf("unknown policy %q (valid: always, from-zero, on-change)", name)
	}
}

func runObserve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	policyName := cfg.Hub.Policy
	if flag, _ := cmd.Flags().GetString("policy"); flag != "" {
		policyName = flag
	}
	policy, err := policyByName(policyName)
	if err != nil {
		return err
	}

	states := cfg.Demo.States
	if flag, _ := cmd.Flags().GetIntSlice("states"); len(flag) > 0 {
		states = flag
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.WithComponent("observe")

	out := cmd.OutOrStdout()
	h := hub.New[int](
		hub.WithPolicy(policy),
		hub.WithLogger[int](log.Slog()),
	)

	for _, name := range cfg.Demo.Subscribers {
		name := name
		h.Subscribe(func() error {
			line := fmt.Sprintf("  %s display: count is now %d", name, h.State())
			fmt.Fprintln(out, subscriberStyle.Render(util.TruncateANSI(line, 80)))
			return nil
		})
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(
		"observing with %s, policy %q", util.Pluralize(h.SubscriberCount(), "subscriber", "subscribers"), policyName)))
	log.Info("demo starting",
		"policy", policyName, "subscribers", h.SubscriberCount(), "states", len(states))

	for _, v := range states {
		// A policy may suppress the round entirely; a suppressed round
		// prints the set line and no subscriber lines.
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("set %d", v)))
		if err := h.SetState(v); err != nil {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("delivery errors: %v", err)))
		}
	}

	log.Info("demo finished", "final_state", h.State())
	return nil
}
