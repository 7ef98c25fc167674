package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindmate/mindmate/internal/api"
	"github.com/mindmate/mindmate/internal/classifier"
	"github.com/mindmate/mindmate/internal/config"
	"github.com/mindmate/mindmate/internal/journal"
	"github.com/mindmate/mindmate/internal/logger"
	"github.com/mindmate/mindmate/internal/store"
)

const version = "0.1.0"

var configDir string

func main() {
	rootCmd := &cobra.Command{
		Use:   "mindmate",
		Short: "Journal backend with sentiment and emotion classification",
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory containing config.yaml")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(insightsCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles everything a command needs.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	store *store.Store
	svc   *journal.Service
}

func (a *app) close() {
	a.store.Close()
	a.log.Sync()
}

func buildApp() (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	clf, err := newClassifier(cfg)
	if err != nil {
		st.Close()
		return nil, err
	}

	svc := journal.New(st, clf, cfg.ClassifyTimeout, log)

	return &app{cfg: cfg, log: log, store: st, svc: svc}, nil
}

func newClassifier(cfg *config.Config) (classifier.Classifier, error) {
	switch cfg.ClassifierBackend {
	case config.ClassifierHuggingFace:
		return classifier.NewHuggingFace(cfg.HFToken, cfg.HFBaseURL)
	default:
		return classifier.NewLexicon(), nil
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			// The store stays open for the lifetime of the server.

			if addr != "" {
				a.cfg.Addr = addr
			}

			server := api.New(a.svc, a.log, a.cfg.Addr)
			return server.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address (overrides config)")
	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [text]",
		Short: "Submit a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()

			entry, err := a.svc.Submit(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Printf("Added entry %d\n", entry.ID)
			fmt.Printf("Sentiment:   %s (%.0f%%)\n", entry.Sentiment.Label, entry.Sentiment.Score*100)
			fmt.Printf("Emotion:     %s (%.0f%%)\n", entry.Emotion.Label, entry.Emotion.Score*100)
			fmt.Printf("Affirmation: %s\n", entry.Affirmation)

			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var emotion, sentiment, startDate, endDate string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()

			start, err := journal.ParseDate(startDate)
			if err != nil {
				return err
			}
			end, err := journal.ParseDate(endDate)
			if err != nil {
				return err
			}

			entries, err := a.svc.History(context.Background(), journal.Filter{
				Emotion:   emotion,
				Sentiment: sentiment,
				Start:     start,
				End:       end,
			})
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No entries found.")
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%-4d %s  %-8s %-9s %s\n",
					e.ID,
					e.Timestamp.Format("2006-01-02 15:04"),
					e.Emotion.Label,
					e.Sentiment.Label,
					truncate(e.Text, 60),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&emotion, "emotion", "", "filter by emotion label")
	cmd.Flags().StringVar(&sentiment, "sentiment", "", "filter by sentiment label")
	cmd.Flags().StringVar(&startDate, "start", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "inclusive end date (YYYY-MM-DD)")
	return cmd
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()

			ins, err := a.svc.Insights(context.Background())
			if err != nil {
				return err
			}

			fmt.Println("Emotions:")
			for label, count := range ins.EmotionCounts {
				fmt.Printf("  %-9s %d\n", label, count)
			}
			fmt.Println("Sentiments:")
			for label, count := range ins.SentimentCounts {
				fmt.Printf("  %-9s %d\n", label, count)
			}
			fmt.Println("Timeline:")
			for _, p := range ins.Timeline {
				fmt.Printf("  %s  %d\n", p.Date, p.Count)
			}

			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id: %s", args[0])
			}

			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.svc.Delete(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted entry %d\n", id)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
