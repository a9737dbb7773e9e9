package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/neexbeast/fishcast/internal/salary"
)

func newRootCmd(log *slog.Logger) *cobra.Command {
	var (
		monthly  float64
		since    string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "salaryticker",
		Short: "Watch your salary accrue while you fish",
		Long: `salaryticker prints how much of a monthly salary has been earned since
a start time, assuming a 30-day month, and celebrates every 100 earned.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
			}

			start := time.Now()
			if since != "" {
				t, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("parsing --since: %w", err)
				}
				start = t
			}

			s, err := salary.Start(monthly, start)
			if err != nil {
				return fmt.Errorf("starting session: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "earning %.4f per minute\n", salary.PerMinute(monthly))

			last := salary.Run(ctx, s, interval, func(s salary.Session, celebrate bool) {
				fmt.Fprintf(out, "\rearned %.2f", s.Earned)
				if celebrate {
					log.Info("another milestone reached", "celebrations", s.Celebrations, "earned", s.Earned)
				}
			})

			fmt.Fprintf(out, "\nearned %.2f over %s\n", last.Earned, last.Now.Sub(last.StartedAt).Round(time.Second))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&monthly, "monthly", "m", 0, "monthly salary (required)")
	cmd.Flags().StringVar(&since, "since", "", "start time in RFC 3339, defaults to now")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "refresh interval")
	_ = cmd.MarkFlagRequired("monthly")

	return cmd
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newRootCmd(log).ExecuteContext(context.Background()); err != nil {
		log.Error("salaryticker failed", "err", err)
		os.Exit(1)
	}
}
