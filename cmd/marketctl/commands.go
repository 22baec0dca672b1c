package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/energyintel/internal/config"
	"github.com/aristath/energyintel/internal/di"
	"github.com/aristath/energyintel/internal/modules/chat"
	"github.com/aristath/energyintel/internal/modules/history"
	"github.com/aristath/energyintel/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagJSON     bool
)

var rootCmd = &cobra.Command{
	Use:           "marketctl",
	Short:         "Query energy market data from the terminal",
	Long:          "marketctl resolves price history, ranks energy news and reads live quotes using the service configuration (.env and environment).",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of formatted output")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(instrumentsCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(chatCmd)
}

// withContainer wires the service, runs fn and releases resources
func withContainer(fn func(*di.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  flagLogLevel,
		Pretty: true,
	})

	container, _, err := di.Wire(cfg, log)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	defer container.Close()

	return fn(container)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

var historyCmd = &cobra.Command{
	Use:   "history <instrument>",
	Short: "Show up to 30 days of daily prices for an instrument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *di.Container) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			series := c.HistoryResolver.Resolve(ctx, args[0], time.Now())
			if flagJSON {
				return printJSON(series)
			}
			fmt.Print(renderSeries(series))
			return nil
		})
	},
}

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List instruments with official price history",
	RunE: func(cmd *cobra.Command, args []string) error {
		instruments := history.ListInstruments()
		if flagJSON {
			return printJSON(instruments)
		}
		fmt.Print(renderInstruments(instruments))
		return nil
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show the ranked energy and AI investment headlines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *di.Container) error {
			result := c.NewsEngine.GetArticles(cmd.Context())
			if flagJSON {
				return printJSON(result)
			}
			fmt.Print(renderNews(result))
			return nil
		})
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the current commodity quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *di.Container) error {
			snap, ok := c.MarketSnapshot.Current()
			if !ok {
				return fmt.Errorf("no market snapshot available")
			}
			if flagJSON {
				return printJSON(snap)
			}
			fmt.Print(renderSnapshot(snap))
			return nil
		})
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the market assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.TrimSpace(strings.Join(args, " "))
		if message == "" {
			return fmt.Errorf("message is required")
		}

		return withContainer(func(c *di.Container) error {
			response := chat.Respond(message, chat.ContextFrom(c.MarketSnapshot))
			if flagJSON {
				return printJSON(map[string]string{"response": response})
			}
			fmt.Println(response)
			return nil
		})
	},
}
