package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
)

// Stats summarizes one dashboard build.
type Stats struct {
	TotalDataPoints int `json:"total_data_points"`
	Insights        int `json:"insights_generated"`
	DataTypes       int `json:"data_types_processed"`
	Recommendations int `json:"recommendations_count"`
}

// Summary is the full dashboard result across all sources.
type Summary struct {
	Title         string            `json:"title"`
	GeneratedAt   time.Time         `json:"generated_at"`
	SourceCount   int               `json:"data_sources"`
	Analyses      []*SourceInsights `json:"source_analysis"`
	CrossInsights []string          `json:"cross_source_insights"`
	Stats         Stats             `json:"summary_stats"`
	Model         string            `json:"ai_model"`
}

// Dashboard analyzes a set of data sources with one enhancer.
type Dashboard struct {
	enhancer enhance.Enhancer
	memory   *memory.Context
	obs      *observe.Observer
}

func New(enhancer enhance.Enhancer, mem *memory.Context, obs *observe.Observer) *Dashboard {
	return &Dashboard{
		enhancer: enhancer,
		memory:   mem,
		obs:      obs,
	}
}

// Build analyzes every source in order, derives cross-source insights
// and summary statistics. Each source's analysis is stored in the
// dashboard's memory context under "<source>_insights".
func (d *Dashboard) Build(ctx context.Context, sources []Source) (*Summary, error) {
	ctx, span := d.obs.StartSpan(ctx, "dashboard.build")
	defer span.End()

	summary := &Summary{
		Title:       "Data Intelligence Dashboard",
		GeneratedAt: time.Now(),
		SourceCount: len(sources),
		Model:       enhance.ModelName(d.enhancer),
	}

	types := make(map[SourceType]bool)
	for _, src := range sources {
		d.obs.Log().Info().
			Str("source", src.Name).
			Str("type", string(src.Type)).
			Msg("analyzing data source")

		insights, err := d.analyzeSource(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("analyzing source %s: %w", src.Name, err)
		}
		summary.Analyses = append(summary.Analyses, insights)
		d.memory.Store(src.Name+"_insights", insights)

		types[src.Type] = true
		summary.Stats.TotalDataPoints += src.Size
		summary.Stats.Insights += len(insights.KeyInsights)
		summary.Stats.Recommendations += len(insights.Recommendations)
	}
	summary.Stats.DataTypes = len(types)

	summary.CrossInsights = d.crossSourceInsights(ctx, summary.Analyses)

	d.obs.Log().Info().
		Int("sources", summary.SourceCount).
		Int("insights", summary.Stats.Insights).
		Msg("dashboard built")

	return summary, nil
}
