package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	json "github.com/goccy/go-json"

	"github.com/ahatanar/StudentSpace/internal/app/models"
	"github.com/ahatanar/StudentSpace/internal/db"
	"github.com/ahatanar/StudentSpace/internal/pkg/apperrors"
	"github.com/ahatanar/StudentSpace/internal/pkg/dberrors"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
)

// SectionDatasetRepository stores term datasets in the section_datasets
// table: one row per term, the raw Banner section array as a JSONB payload.
type SectionDatasetRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSectionDatasetRepository creates a new SectionDatasetRepository
func NewSectionDatasetRepository(db *pgxpool.Pool) *SectionDatasetRepository {
	return &SectionDatasetRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// SectionsForTerm returns the decoded dataset for a term. A missing row is
// the "data unavailable" condition, distinct from a present-but-empty
// dataset.
func (r *SectionDatasetRepository) SectionsForTerm(ctx context.Context, term string) ([]models.Section, error) {
	sql, args, err := r.sb.Select("payload").
		From("section_datasets").
		Where(squirrel.Eq{"term": term}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset query: %w", err)
	}

	var payload []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewDatasetNotFoundError(fmt.Sprintf("no dataset for term %s", term))
		}
		logger.Error().Err(err).Str("term", term).Msg("Error loading section dataset")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetUnavailable, err)
	}

	var sections []models.Section
	if err := json.Unmarshal(payload, &sections); err != nil {
		return nil, fmt.Errorf("%w: term %s: %v", apperrors.ErrDatasetCorrupt, term, err)
	}
	return sections, nil
}

// ListTerms enumerates the stored datasets, newest term first.
func (r *SectionDatasetRepository) ListTerms(ctx context.Context) ([]models.DatasetInfo, error) {
	sql, args, err := r.sb.Select("term", "section_count", "fetched_at").
		From("section_datasets").
		OrderBy("term DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build term list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing section datasets")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetUnavailable, err)
	}
	defer rows.Close()

	var infos []models.DatasetInfo
	for rows.Next() {
		var info models.DatasetInfo
		var fetchedAt time.Time
		if err := rows.Scan(&info.Term, &info.SectionCount, &fetchedAt); err != nil {
			return nil, fmt.Errorf("error scanning dataset row: %w", err)
		}
		info.FetchedAt = &fetchedAt
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset rows: %w", err)
	}
	return infos, nil
}

// SaveDataset stores a term dataset. With overwrite true the replacement is
// transactional (delete plus insert commit together), so readers never see a
// half-written term; with overwrite false an existing term is an error.
func (r *SectionDatasetRepository) SaveDataset(ctx context.Context, term string, sections []models.Section, overwrite bool) error {
	payload, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if overwrite {
			if _, err := tx.Exec(ctx, `DELETE FROM section_datasets WHERE term = $1`, term); err != nil {
				return fmt.Errorf("error clearing existing dataset: %w", err)
			}
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO section_datasets (term, payload, section_count, fetched_at, updated_at)
			 VALUES ($1, $2, $3, $4, $4)`,
			term, payload, len(sections), time.Now())
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewCustomError(apperrors.ErrDatasetAlreadyExists,
					fmt.Sprintf("dataset for term %s already exists", term))
			}
			logger.Error().Err(err).Str("term", term).Msg("Error storing section dataset")
			return fmt.Errorf("error storing dataset: %w", err)
		}

		logger.Info().Str("term", term).Int("sections", len(sections)).Msg("Dataset stored")
		return nil
	})
}

// Ping reports whether the backing database is reachable.
func (r *SectionDatasetRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
