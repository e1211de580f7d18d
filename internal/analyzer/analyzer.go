package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/SiddiqueAhmad/ai-costing/internal/core/pricing"
	"github.com/SiddiqueAhmad/ai-costing/internal/data/aggregator"
	"github.com/SiddiqueAhmad/ai-costing/internal/data/builder"
	"github.com/SiddiqueAhmad/ai-costing/internal/data/cache"
	"github.com/SiddiqueAhmad/ai-costing/internal/data/parser"
	"github.com/SiddiqueAhmad/ai-costing/internal/data/source"
	"github.com/SiddiqueAhmad/ai-costing/internal/presentation/formatter"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

type Config struct {
	SheetId      string
	Gid          string
	InputFile    string // local CSV path; overrides the sheet source when set
	OutputFormat string
	Timezone     string
	CacheTTL     time.Duration
	// Rate configuration
	RateSource string // default, file
	ConfigPath string
}

// Analyzer wires the fetch, parse, build, cost and aggregate phases into one
// pipeline run.
type Analyzer struct {
	config     *Config
	cache      *cache.FeedCache
	builder    *builder.Builder
	engine     *pricing.Engine
	aggregator *aggregator.Aggregator
	provider   pricing.RateProvider
}

// New creates an Analyzer from config. The feed source is a local file when
// InputFile is set, otherwise the published sheet export.
func New(config *Config) (*Analyzer, error) {
	var src source.Source
	if config.InputFile != "" {
		src = source.NewFileSource(config.InputFile)
	} else {
		if config.SheetId == "" {
			return nil, fmt.Errorf("either a sheet id or an input file is required")
		}
		src = source.NewSheetSource(config.SheetId, config.Gid)
	}

	provider, err := pricing.CreateRateProvider(&pricing.SourceConfig{
		RateSource: config.RateSource,
		ConfigPath: config.ConfigPath,
	})
	if err != nil {
		util.LogError("Failed to create rate provider: " + err.Error())
		return nil, err
	}

	loc := util.GetTimeProvider().Location()

	return &Analyzer{
		config:     config,
		cache:      cache.New(src, config.CacheTTL),
		builder:    builder.New(loc),
		engine:     pricing.NewEngine(provider),
		aggregator: aggregator.New(),
		provider:   provider,
	}, nil
}

// Cache exposes the feed cache so a caller can invalidate it, e.g. on a
// rate-config change in watch mode.
func (a *Analyzer) Cache() *cache.FeedCache {
	return a.cache
}

// Provider exposes the rate provider for explicit refresh.
func (a *Analyzer) Provider() pricing.RateProvider {
	return a.provider
}

// BuildReport runs the pipeline and returns the aggregation result without
// rendering it. A fetch or parse failure aborts with no partial report.
func (a *Analyzer) BuildReport(ctx context.Context) (*aggregator.Report, error) {
	startTime := time.Now()

	// Phase 1: Fetch feed (through the TTL cache)
	fetchStart := time.Now()
	payload, err := a.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	util.LogDebug(fmt.Sprintf("Phase 1 - Feed fetch duration: %v, %d bytes", time.Since(fetchStart), len(payload)))

	// Phase 2: Parse CSV into raw rows
	parseStart := time.Now()
	rows, err := parser.Rows(payload)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	util.LogDebug(fmt.Sprintf("Phase 2 - Parse duration: %v, %d rows", time.Since(parseStart), len(rows)))

	// Phase 3: Build validated records
	buildStart := time.Now()
	result := a.builder.Build(rows)
	util.LogDebug(fmt.Sprintf("Phase 3 - Build duration: %v, %d records, %d rejected",
		time.Since(buildStart), len(result.Records), len(result.Rejections)))

	// Phase 4: Apply costs
	costStart := time.Now()
	if err := a.engine.ApplyCosts(ctx, result.Records); err != nil {
		return nil, err
	}
	util.LogDebug(fmt.Sprintf("Phase 4 - Costing duration: %v", time.Since(costStart)))

	// Phase 5: Aggregate
	report := a.aggregator.Aggregate(result.Records, len(result.Rejections))
	util.LogDebug(fmt.Sprintf("Pipeline complete in %v", time.Since(startTime)))

	return report, nil
}

// Run builds the report and renders it in the configured output format.
func (a *Analyzer) Run(ctx context.Context) error {
	report, err := a.BuildReport(ctx)
	if err != nil {
		return err
	}
	return a.formatAndOutput(report)
}

func (a *Analyzer) formatAndOutput(report *aggregator.Report) error {
	switch a.config.OutputFormat {
	case "json":
		return formatter.NewJSONFormatter().Format(report)
	case "csv":
		return formatter.NewCSVFormatter().Format(report)
	case "summary":
		return formatter.NewSummaryFormatter().Format(report)
	default:
		return formatter.NewTableFormatter().Format(report)
	}
}
