package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/toasty/internal/alert"
	"github.com/llehouerou/toasty/internal/app"
	"github.com/llehouerou/toasty/internal/config"
	"github.com/llehouerou/toasty/internal/errmsg"
	"github.com/llehouerou/toasty/internal/history"
	"github.com/llehouerou/toasty/internal/icons"
	"github.com/llehouerou/toasty/internal/logging"
	"github.com/llehouerou/toasty/internal/notify"
	"github.com/llehouerou/toasty/internal/sound"
	"github.com/llehouerou/toasty/internal/stderr"
	"github.com/llehouerou/toasty/internal/toast"
	"github.com/llehouerou/toasty/internal/ui/historypopup"
)

type flags struct {
	configPath string
	message    string
	typeKey    string
	priority   string
	title      string
	image      string
	durationMS int
}

func main() {
	var f flags
	cmd := &cobra.Command{
		Use:   "toasty",
		Short: "Terminal notification center",
		Long: `toasty shows stacked, self-dismissing notifications in the terminal.

Press 1-4 to add sample notifications, t for templates, u for an urgent
one, h for the dismissal history and ? for every key.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file loaded after the default locations")
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "notification shown at start-up")
	cmd.Flags().StringVarP(&f.typeKey, "type", "t", toast.TypeInfo, "type of the start-up notification")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "priority of the start-up notification (LOW, NORMAL, HIGH, URGENT)")
	cmd.Flags().StringVar(&f.title, "title", "", "title of the start-up notification")
	cmd.Flags().StringVar(&f.image, "image", "", "image attached to the start-up notification")
	cmd.Flags().IntVarP(&f.durationMS, "duration", "d", -1, "duration in ms of the start-up notification (0 = until closed)")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags) error {
	// Capture stderr before the audio backend writes to it.
	capture, captureErr := stderr.Start()
	if capture != nil {
		defer capture.Stop()
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	icons.Init(cfg.Icons)

	log, closer, err := logging.Open(cfg.LogLevel)
	if err != nil {
		log = zerolog.Nop()
	} else {
		defer closer.Close()
	}
	if captureErr != nil {
		log.Warn().Err(captureErr).Msg("stderr capture unavailable")
	}

	notifier, err := notify.New("toasty")
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpDesktopNotify, err))
		notifier = nil
	}
	player := sound.New(cfg.SoundFor, cfg.Volume())
	defer player.Close()
	dispatcher := alert.New(notifier, player, log)
	defer dispatcher.Wait()

	opts := cfg.ToastOptions()
	opts.Alerter = dispatcher
	opts.Logger = log

	var hist historypopup.Source
	if opts.EnableHistory {
		store, err := history.Open(cfg.HistoryLimit())
		if err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpHistoryOpen, err))
		} else {
			defer store.Close()
			opts.History = store
			hist = store
		}
	}

	provider := toast.NewProvider(opts)
	defer provider.Close()
	ctx = toast.WithProvider(ctx, provider)

	if f.message != "" {
		toast.MustFrom(ctx).Add(f.message, f.addOptions()...)
	}

	var lines <-chan string
	if capture != nil {
		lines = capture.Lines()
	}
	m, err := app.New(ctx, app.Deps{History: hist, Stderr: lines, Log: log})
	if err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}

	log.Info().Str("position", string(opts.Position)).Int("max_visible", opts.MaxVisible).Msg("starting")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func (f flags) addOptions() []toast.AddOption {
	opts := []toast.AddOption{toast.WithType(f.typeKey)}
	if f.priority != "" {
		opts = append(opts, toast.WithPriority(f.priority))
	}
	if f.title != "" {
		opts = append(opts, toast.WithTitle(f.title))
	}
	if f.image != "" {
		opts = append(opts, toast.WithImage(f.image))
	}
	if f.durationMS >= 0 {
		opts = append(opts, toast.WithDuration(time.Duration(f.durationMS)*time.Millisecond))
	}
	return opts
}
