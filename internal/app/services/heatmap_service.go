package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ahatanar/StudentSpace/internal/app/models"
	"github.com/ahatanar/StudentSpace/internal/app/models/dto"
	"github.com/ahatanar/StudentSpace/internal/heatmap"
	"github.com/ahatanar/StudentSpace/internal/pkg/apperrors"
	"github.com/ahatanar/StudentSpace/internal/pkg/cache"
)

// SectionSource supplies term-keyed section datasets. Implemented by the
// file store and the Postgres repository; the service never knows which one
// it is talking to.
type SectionSource interface {
	SectionsForTerm(ctx context.Context, term string) ([]models.Section, error)
	ListTerms(ctx context.Context) ([]models.DatasetInfo, error)
	Ping(ctx context.Context) error
}

// HeatmapDefaults are the fallback request parameters from configuration.
type HeatmapDefaults struct {
	Term          string
	Interval      int
	Campus        string
	IncludeHybrid bool
}

// HeatmapService defines the interface for heatmap operations
type HeatmapService interface {
	BuildHeatmap(ctx context.Context, query dto.HeatmapQuery) (*dto.HeatmapResponse, error)
	ListTerms(ctx context.Context) ([]models.DatasetInfo, error)
	Ping(ctx context.Context) error
}

// heatmapServiceImpl implements the HeatmapService interface
type heatmapServiceImpl struct {
	source   SectionSource
	cache    *cache.Cache
	defaults HeatmapDefaults
	logger   zerolog.Logger
}

// NewHeatmapService creates a new heatmap service instance. cache may be nil
// when Redis is not configured.
func NewHeatmapService(source SectionSource, c *cache.Cache, defaults HeatmapDefaults, logger zerolog.Logger) HeatmapService {
	return &heatmapServiceImpl{
		source:   source,
		cache:    c,
		defaults: defaults,
		logger:   logger,
	}
}

// resolve fills unset query fields from the configured defaults.
func (s *heatmapServiceImpl) resolve(query dto.HeatmapQuery) dto.HeatmapQuery {
	if query.Term == "" {
		query.Term = s.defaults.Term
	}
	if query.Interval == 0 {
		query.Interval = s.defaults.Interval
	}
	if query.Campus == "" {
		query.Campus = s.defaults.Campus
	}
	if query.IncludeHybrid == nil {
		hybrid := s.defaults.IncludeHybrid
		query.IncludeHybrid = &hybrid
	}
	return query
}

// BuildHeatmap loads the dataset for the requested term and runs the pure
// aggregation over it. A missing dataset surfaces as ErrDatasetNotFound; a
// present dataset with zero matching sections is a legitimate result with a
// fully-keyed all-zero grid.
func (s *heatmapServiceImpl) BuildHeatmap(ctx context.Context, query dto.HeatmapQuery) (*dto.HeatmapResponse, error) {
	query = s.resolve(query)
	if query.Interval < 1 || query.Interval > 24*60 {
		return nil, fmt.Errorf("%w: interval must be between 1 and 1440 minutes", apperrors.ErrInvalidInterval)
	}

	// Cached entries never carry rawSections, so raw requests always
	// recompute.
	key := cache.HeatmapKey(query.Term, query.Interval, query.Campus, *query.IncludeHybrid)
	if !query.IncludeRaw {
		var cached dto.HeatmapResponse
		if s.cache.Get(ctx, key, &cached) {
			s.logger.Debug().Str("term", query.Term).Msg("Heatmap served from cache")
			return &cached, nil
		}
	}

	sections, err := s.source.SectionsForTerm(ctx, query.Term)
	if err != nil {
		return nil, err
	}

	result := heatmap.Build(sections, heatmap.Options{
		IntervalMinutes: query.Interval,
		CampusSubstring: query.Campus,
		IncludeHybrid:   *query.IncludeHybrid,
	})

	resp := &dto.HeatmapResponse{
		Term:          query.Term,
		Campus:        result.Campus,
		TotalSections: result.TotalSections,
		HeatmapData:   result.HeatmapData,
		TimeSlots:     result.TimeSlots,
		Interval:      result.Interval,
	}

	if query.IncludeRaw {
		resp.RawSections = result.RawSections
		return resp, nil
	}

	rawCount := len(result.RawSections)
	resp.RawSectionsCount = &rawCount
	s.cache.Set(ctx, key, resp)

	s.logger.Debug().
		Str("term", query.Term).
		Int("interval", query.Interval).
		Int("totalSections", resp.TotalSections).
		Msg("Heatmap computed")
	return resp, nil
}

// ListTerms returns the catalog of available term datasets.
func (s *heatmapServiceImpl) ListTerms(ctx context.Context) ([]models.DatasetInfo, error) {
	return s.source.ListTerms(ctx)
}

// Ping reports whether the dataset source is reachable.
func (s *heatmapServiceImpl) Ping(ctx context.Context) error {
	return s.source.Ping(ctx)
}
