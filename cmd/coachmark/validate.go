package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/coachmark/internal/config"
	"github.com/alexisbeaulieu97/coachmark/internal/logger"
	"github.com/alexisbeaulieu97/coachmark/internal/tui"
	cmerrors "github.com/alexisbeaulieu97/coachmark/pkg/errors"
)

type validateOptions struct {
	Paths    []string
	Targets  []string
	Demo     bool
	JSON     bool
	LogLevel string
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <tour-file>...",
		Short: "Check tour files without running them",
		Long: `Validate parses each tour file and checks its fields, then reports every
problem it finds. With --targets (or --demo for the sample mail screen) each
mark must also name one of the given regions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			opts.LogLevel = root.logLevel()
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Targets, "targets", nil, "Regions marks may point at (comma separated)")
	cmd.Flags().BoolVar(&opts.Demo, "demo", false, "Check targets against the demo mail screen")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Report problems as JSON lines")

	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	console, err := logger.NewConsole(logger.ConsoleOptions{
		Writer:    cmd.ErrOrStderr(),
		Level:     opts.LogLevel,
		Component: "validate",
		JSON:      opts.JSON,
	})
	if err != nil {
		return err
	}

	known := opts.Targets
	if opts.Demo {
		known = append(known, tui.Targets()...)
	}

	failed := 0
	for _, path := range opts.Paths {
		tour, err := checkTour(path, known)
		if err != nil {
			failed++
			console.Error(err, "invalid tour", problemFields(path, err)...)
			continue
		}
		console.Debug("tour ok", "file", path, "marks", len(tour.Marks))
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d marks\n", path, len(tour.Marks))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d tour files invalid", failed, len(opts.Paths))
	}
	return nil
}

func checkTour(path string, known []string) (*config.Tour, error) {
	tour, err := config.ParseTour(path)
	if err != nil {
		return nil, err
	}
	if len(known) > 0 {
		if err := config.ValidateTargets(tour, known); err != nil {
			return nil, err
		}
	}
	return tour, nil
}

// problemFields pulls the location out of the typed errors so each report
// names where to look.
func problemFields(path string, err error) []any {
	fields := []any{"file", path}

	var parseErr *cmerrors.ParseError
	var validationErr *cmerrors.ValidationError
	var targetErr *cmerrors.TargetError
	switch {
	case errors.As(err, &parseErr):
		if parseErr.Line > 0 {
			fields = append(fields, "line", parseErr.Line)
		}
	case errors.As(err, &validationErr):
		fields = append(fields, "field", validationErr.Field)
	case errors.As(err, &targetErr):
		fields = append(fields, "target", targetErr.Target, "order", targetErr.Order)
	}
	return fields
}
