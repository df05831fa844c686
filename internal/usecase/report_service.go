package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
	"github.com/michelleon/overwatch-stats/internal/domain/hero"
	"github.com/michelleon/overwatch-stats/internal/domain/player"
	"github.com/michelleon/overwatch-stats/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
)

// ErrPlayerUnavailable marks a player the provider has no data for.
var ErrPlayerUnavailable = fmt.Errorf("%w: player stats unavailable", ErrNotFound)

type PlayerStatsProvider interface {
	FetchPlayerStats(ctx context.Context, playerID string) (careerstats.Document, error)
}

// ReportWriter receives the output of one player report, in roster order.
type ReportWriter interface {
	BeginPlayer(entry player.Entry) error
	WriteTable(entry player.Entry, table careerstats.Table) error
}

type ReportConfig struct {
	Requests     []careerstats.StatRequest
	TopHeroes    int
	Order        Order
	FetchWorkers int
}

func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Requests:     careerstats.DefaultStatRequests(),
		TopHeroes:    5,
		Order:        OrderAscending,
		FetchWorkers: 1,
	}
}

type Summary struct {
	Rendered    int
	Skipped     int
	Failed      int
	Diagnostics int
}

type ReportService struct {
	provider PlayerStatsProvider
	writer   ReportWriter
	keys     KeyNormalizer
	cfg      ReportConfig
	logger   *logging.Logger
}

func NewReportService(provider PlayerStatsProvider, writer ReportWriter, keys KeyNormalizer, cfg ReportConfig, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	if keys == nil {
		keys = hero.Default()
	}
	if len(cfg.Requests) == 0 {
		cfg.Requests = careerstats.DefaultStatRequests()
	}
	if cfg.Order == "" {
		cfg.Order = OrderAscending
	}
	if cfg.FetchWorkers < 1 {
		cfg.FetchWorkers = 1
	}

	return &ReportService{
		provider: provider,
		writer:   writer,
		keys:     keys,
		cfg:      cfg,
		logger:   logger,
	}
}

type fetchResult struct {
	doc careerstats.Document
	err error
}

// Run fetches and reports every entry. Players without data or with an
// unreadable document are skipped; any other fetch error ends the run.
func (s *ReportService) Run(ctx context.Context, entries []player.Entry) (Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Run")
	defer span.End()

	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return Summary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	for _, req := range s.cfg.Requests {
		if err := req.Validate(); err != nil {
			return Summary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	results, err := s.fetchAll(ctx, entries)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for i, entry := range entries {
		res := results[i]
		if res.err != nil {
			if errors.Is(res.err, ErrPlayerUnavailable) {
				s.logger.InfoContext(ctx, "skip player without stats", "player", entry.ID, "error", res.err)
				summary.Skipped++
				continue
			}
			if errors.Is(res.err, ErrMalformedDocument) {
				s.logger.WarnContext(ctx, "skip player with malformed stats", "player", entry.ID, "error", res.err)
				summary.Failed++
				continue
			}
			return summary, fmt.Errorf("fetch stats player=%s: %w", entry.ID, res.err)
		}

		diagnostics, err := s.reportPlayer(ctx, entry, res.doc)
		summary.Diagnostics += diagnostics
		if err != nil {
			if errors.Is(err, ErrMalformedDocument) {
				s.logger.WarnContext(ctx, "skip player with malformed stats", "player", entry.ID, "error", err)
				summary.Failed++
				continue
			}
			return summary, err
		}
		summary.Rendered++
	}

	s.logger.DebugContext(ctx, "report finished",
		"rendered", summary.Rendered,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"diagnostics", summary.Diagnostics,
	)
	return summary, nil
}

func (s *ReportService) reportPlayer(ctx context.Context, entry player.Entry, doc careerstats.Document) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.reportPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("player.id", entry.ID))

	topHeroes, err := SelectTopHeroes(doc, s.cfg.Order)
	if err != nil {
		return 0, fmt.Errorf("select top heroes player=%s: %w", entry.ID, err)
	}
	careerStats, err := CareerStats(doc)
	if err != nil {
		return 0, fmt.Errorf("read career stats player=%s: %w", entry.ID, err)
	}

	heroes := append([]string{hero.AllHeroesKey}, HeroNames(topHeroes, s.cfg.TopHeroes)...)

	if err := s.writer.BeginPlayer(entry); err != nil {
		return 0, fmt.Errorf("write report header player=%s: %w", entry.ID, err)
	}

	extractor := NewStatExtractor(s.keys, func(d careerstats.Diagnostic) {
		s.logger.WarnContext(ctx, d.String(), "player", entry.ID, "hero", d.Hero, "stat", d.Path)
	})
	table := extractor.Extract(s.cfg.Requests, heroes, careerStats)

	if err := s.writer.WriteTable(entry, table); err != nil {
		return len(table.Diagnostics), fmt.Errorf("write report table player=%s: %w", entry.ID, err)
	}
	return len(table.Diagnostics), nil
}

func (s *ReportService) fetchAll(ctx context.Context, entries []player.Entry) ([]fetchResult, error) {
	results := make([]fetchResult, len(entries))
	if s.cfg.FetchWorkers <= 1 || len(entries) <= 1 {
		for i, entry := range entries {
			doc, err := s.provider.FetchPlayerStats(ctx, entry.ID)
			results[i] = fetchResult{doc: doc, err: err}
			if err != nil && !isRecoverableFetchError(err) {
				break
			}
		}
		return results, ctx.Err()
	}

	pool, err := ants.NewPool(s.cfg.FetchWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, entry := range entries {
		i, entry := i, entry
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			doc, err := s.provider.FetchPlayerStats(ctx, entry.ID)
			results[i] = fetchResult{doc: doc, err: err}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	return results, ctx.Err()
}

func isRecoverableFetchError(err error) bool {
	return errors.Is(err, ErrPlayerUnavailable) || errors.Is(err, ErrMalformedDocument)
}
