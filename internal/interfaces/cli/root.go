package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/michelleon/overwatch-stats/internal/config"
	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
	"github.com/michelleon/overwatch-stats/internal/domain/hero"
	"github.com/michelleon/overwatch-stats/internal/domain/player"
	"github.com/michelleon/overwatch-stats/internal/platform/logging"
	"github.com/michelleon/overwatch-stats/internal/usecase"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

var cliTracer = otel.Tracer("overwatch-stats/internal/interfaces/cli")

type Options struct {
	Provider usecase.PlayerStatsProvider
	Config   config.Config
	Logger   *logging.Logger
	Out      io.Writer
	Roster   []player.Entry
	Heroes   *hero.Registry
}

type reportFlags struct {
	players []string
	stats   []string
	top     int
	order   string
	workers int
}

// NewRootCommand builds the ovrstats command tree. The root command renders
// the stats report; flags override configuration values.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Roster == nil {
		opts.Roster = player.DefaultRoster()
	}
	if opts.Heroes == nil {
		opts.Heroes = hero.Default()
	}

	flags := reportFlags{
		top:     opts.Config.TopHeroes,
		order:   opts.Config.TopHeroesOrder,
		workers: opts.Config.FetchWorkers,
	}

	root := &cobra.Command{
		Use:           "ovrstats",
		Short:         "Print career stats for the tracked roster",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts, flags)
		},
	}

	root.Flags().StringSliceVarP(&flags.players, "player", "p", nil, "Limit the report to these roster player ids")
	root.Flags().StringSliceVarP(&flags.stats, "stat", "s", nil, "Stat column as section.field, repeatable")
	root.Flags().IntVarP(&flags.top, "top", "n", flags.top, "Number of top heroes per player")
	root.Flags().StringVar(&flags.order, "order", flags.order, "Top hero ordering by time played: asc or desc")
	root.Flags().IntVarP(&flags.workers, "workers", "w", flags.workers, "Concurrent stat fetches")

	root.AddCommand(newRosterCommand(opts), newHeroesCommand(opts))

	return root
}

func runReport(cmd *cobra.Command, opts Options, flags reportFlags) error {
	entries, err := player.Filter(opts.Roster, flags.players)
	if err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	order, err := usecase.ParseOrder(flags.order)
	if err != nil {
		return err
	}
	if flags.top < 0 {
		return fmt.Errorf("%w: top must be >= 0", usecase.ErrInvalidInput)
	}

	requests := opts.Config.StatRequests
	if len(flags.stats) > 0 {
		requests = make([]careerstats.StatRequest, 0, len(flags.stats))
		for _, raw := range flags.stats {
			req, err := careerstats.ParseStatRequest(raw)
			if err != nil {
				return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
			}
			requests = append(requests, req)
		}
	}

	service := usecase.NewReportService(
		opts.Provider,
		NewTableRenderer(opts.Out),
		opts.Heroes,
		usecase.ReportConfig{
			Requests:     requests,
			TopHeroes:    flags.top,
			Order:        order,
			FetchWorkers: flags.workers,
		},
		opts.Logger,
	)

	ctx, span := cliTracer.Start(cmd.Context(), "ovrstats.report")
	defer span.End()

	summary, err := service.Run(ctx, entries)
	if err != nil {
		span.RecordError(err)
		return err
	}

	opts.Logger.InfoContext(ctx, "report complete",
		"rendered", summary.Rendered,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"diagnostics", summary.Diagnostics,
	)
	return nil
}

func newRosterCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List tracked players with team and role",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(opts.Roster))
			for _, entry := range opts.Roster {
				rows = append(rows, []string{entry.ID, entry.Team.DisplayName(), string(entry.Role)})
			}
			return writeTable(opts.Out, []string{"player", "team", "role"}, rows)
		},
	}
}

func newHeroesCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "heroes",
		Short: "List known heroes by role",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rows := make([][]string, 0, opts.Heroes.Len())
			for _, role := range []hero.Role{hero.RoleOffense, hero.RoleDefense, hero.RoleTank, hero.RoleSupport} {
				for _, h := range opts.Heroes.ByRole(role) {
					rows = append(rows, []string{h.Name, string(h.Role), h.APIKey})
				}
			}
			return writeTable(opts.Out, []string{"name", "role", "api key"}, rows)
		},
	}
}
