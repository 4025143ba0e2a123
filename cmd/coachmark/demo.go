package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/coachmark/internal/config"
	"github.com/alexisbeaulieu97/coachmark/internal/logger"
	"github.com/alexisbeaulieu97/coachmark/internal/tui"
)

var errNotTerminal = errors.New("demo needs an interactive terminal")

type demoOptions struct {
	TourPath string
	Auto     time.Duration
	Events   bool
	LogLevel string
	LogFile  string
}

// demoRunner is swapped in tests so the command can be exercised without a
// terminal.
var demoRunner = runDemo

// isTerminal reports whether the demo can take over the screen.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a tour over a sample mail screen",
		Long: `Demo opens a sample mail screen in the alternate screen and walks through
its regions. Pass --tour to run your own tour file instead of the built-in one;
its targets must be regions the mail screen exposes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.LogLevel = root.logLevel()
			opts.LogFile = root.logFile()
			return demoRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.TourPath, "tour", "t", "", "Tour file to run")
	cmd.Flags().DurationVar(&opts.Auto, "auto", 0, "Advance automatically after this long (e.g. 2s)")
	cmd.Flags().BoolVar(&opts.Events, "events", false, "Navigate with the screen's own keys through an event source")

	return cmd
}

// loadTour returns the demo tour, or the tour at path checked against the
// regions of the mail screen.
func loadTour(path string) (*config.Tour, error) {
	if path == "" {
		return tui.DefaultTour(), nil
	}
	tour, err := config.ParseTour(path)
	if err != nil {
		return nil, err
	}
	if err := config.ValidateTargets(tour, tui.Targets()); err != nil {
		return nil, err
	}
	return tour, nil
}

// openLog builds the file logger; without a path the demo logs nowhere
// since the screen belongs to the program.
func openLog(path, level string) (*logger.Logger, io.Closer, error) {
	if path == "" {
		return logger.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.New(logger.Options{Level: level, Writer: f})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, f, nil
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	tour, err := loadTour(opts.TourPath)
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errNotTerminal
	}

	log, closer, err := openLog(opts.LogFile, opts.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		log.Warn("terminal size unavailable", "error", err.Error())
		width, height = 0, 0
	}

	m, err := tui.NewModel(tui.Options{
		Tour:   tour,
		Logger: log,
		Events: opts.Events,
		Auto:   opts.Auto,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("build demo screen: %w", err)
	}

	log.Info("demo started", "tour", tour.Name, "marks", len(tour.Marks), "events", opts.Events)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if err != nil {
		log.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}

	if fm, ok := final.(tui.Model); ok {
		switch {
		case !fm.TourDone():
			fmt.Fprintf(cmd.OutOrStdout(), "%s left before it finished\n", tour.Name)
		case fm.Skipped():
			fmt.Fprintf(cmd.OutOrStdout(), "%s skipped after %d/%d stops\n", tour.Name, fm.Visited(), len(tour.Marks))
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s finished: %d/%d stops seen\n", tour.Name, fm.Visited(), len(tour.Marks))
		}
	}
	log.Info("demo closed")
	return nil
}
