package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"campwise/internal/app"
	"campwise/internal/assistant"
	"campwise/internal/async"
	"campwise/internal/config"
	"campwise/internal/fixtures"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	folder  string
	tripID  int
)

// newRootCmd собирает дерево команд. Команды работают с демонстрационной базой в памяти
// и выполняют отложенные операции сразу.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "campwise",
		Short:         "Campwise - camping assistant from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	askCmd := &cobra.Command{
		Use:   "ask <text>",
		Short: "Ask the assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List suggested questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, q := range assistant.Presets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
			}
			return nil
		},
	}

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize the demo trip itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(c *app.Container) error {
				return runOptimize(cmd.Context(), cmd.OutOrStdout(), c)
			})
		},
	}
	optimizeCmd.Flags().IntVar(&tripID, "trip", fixtures.DemoTripID, "Trip ID")

	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "List saved places",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(c *app.Container) error {
				return runFavorites(cmd.Context(), cmd.OutOrStdout(), c)
			})
		},
	}
	favoritesCmd.Flags().StringVar(&folder, "folder", "all", "Folder ID (all - every saved place)")

	rootCmd.AddCommand(askCmd, presetsCmd, optimizeCmd, favoritesCmd)
	return rootCmd
}

func withContainer(ctx context.Context, fn func(c *app.Container) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := zap.NewNop()
	if verbose {
		var err error
		if logger, err = app.NewLogger("debug"); err != nil {
			return err
		}
		defer logger.Sync()
	}
	cfg := config.Default()
	container, err := app.New(ctx, &cfg, async.Immediate{}, logger)
	if err != nil {
		return err
	}
	defer container.Close()
	return fn(container)
}

func runAsk(out io.Writer, text string) error {
	resp := assistant.Classify(text)
	fmt.Fprintln(out, resp.Text)
	if resp.Payload == nil {
		return nil
	}
	data, err := json.MarshalIndent(resp.Payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	fmt.Fprintf(out, "\n[%s]\n%s\n", resp.Kind, data)
	return nil
}

func runOptimize(ctx context.Context, out io.Writer, c *app.Container) error {
	days, err := c.Plans.Optimize(ctx, tripID).Wait(ctx)
	if err != nil {
		return err
	}
	for _, d := range days {
		fmt.Fprintf(out, "%d. %s - %s (%s)\n", d.Order, d.Day, d.Location, d.Campsite)
	}
	return nil
}

func runFavorites(ctx context.Context, out io.Writer, c *app.Container) error {
	places, err := c.Favorites.Places(ctx, folder)
	if err != nil {
		return err
	}
	for _, p := range places {
		line := fmt.Sprintf("%s, %s [%s]", p.Name, p.Location, strings.Join(p.Tags, ", "))
		if p.Offline {
			line += " (offline)"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
