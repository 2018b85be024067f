package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/famomatic/ytsearch/client"
)

var (
	filterName string
	pages      int
	jsonOut    bool
	proxyURL   string
	suggest    bool
	timeout    time.Duration
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for videos and channels",
	Long: `Search YouTube and print one result per line. Use --pages to follow
continuation pages and --filter to restrict the result type.

Examples:
  ytsearch search "golang tutorial"
  ytsearch search "synthwave" --filter playlist
  ytsearch search "keyboards" --pages 2 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		filter, err := client.ParseFilter(filterName)
		if err != nil {
			return err
		}

		session := client.NewWithConfig(args[0], filter, client.Config{
			ProxyURL:       proxyURL,
			RequestTimeout: timeout,
			Logger:         zerologAdapter{log: logger},
		})

		ctx := context.Background()
		results, err := session.Results(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("search failed")
			return err
		}
		for page := 1; page < pages; page++ {
			if err := session.GetNextResults(ctx); err != nil {
				if errors.Is(err, client.ErrNoMoreResults) {
					break
				}
				logger.Error().Err(err).Int("page", page+1).Msg("continuation fetch failed")
				return err
			}
		}
		if results, err = session.Results(ctx); err != nil {
			return err
		}

		if jsonOut {
			if err := printJSON(results); err != nil {
				return err
			}
		} else {
			printResults(results)
		}

		if suggest {
			suggestions, err := session.CompletionSuggestions(ctx)
			if err != nil {
				return err
			}
			for _, s := range suggestions {
				fmt.Printf("suggestion: %s\n", s)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&filterName, "filter", "f", "", "Restrict result type (video, channel, playlist, movie)")
	searchCmd.Flags().IntVarP(&pages, "pages", "p", 1, "Number of result pages to fetch")
	searchCmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON")
	searchCmd.Flags().StringVar(&proxyURL, "proxy", "", "Proxy URL for API requests")
	searchCmd.Flags().BoolVarP(&suggest, "suggest", "s", false, "Print autocomplete suggestions for the query")
	searchCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
}

func printResults(results []client.Result) {
	for _, r := range results {
		switch v := r.(type) {
		case client.VideoResult:
			duration := v.Duration
			if duration == "" {
				duration = "live"
			}
			fmt.Printf("%s\n    %s · %d views · %s\n    %s\n", v.Title, v.ChannelName, v.ViewCount, duration, v.URL)
		case client.ChannelResult:
			fmt.Printf("channel %s\n    %s\n", v.ChannelID, v.ChannelURL)
		}
	}
}

func printJSON(results []client.Result) error {
	type row struct {
		Type string        `json:"type"`
		Data client.Result `json:"data"`
	}
	rows := make([]row, 0, len(results))
	for _, r := range results {
		switch r.(type) {
		case client.VideoResult:
			rows = append(rows, row{Type: "video", Data: r})
		case client.ChannelResult:
			rows = append(rows, row{Type: "channel", Data: r})
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
