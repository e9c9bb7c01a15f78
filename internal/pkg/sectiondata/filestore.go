// Package sectiondata serves term-keyed course-section datasets from the
// local filesystem. Datasets are the raw Banner section arrays written by
// sectionsync, one <term>.json file per term.
package sectiondata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ahatanar/StudentSpace/internal/app/models"
	"github.com/ahatanar/StudentSpace/internal/pkg/apperrors"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
)

// FileStore reads and writes term datasets under a single data directory.
// Decoded datasets are cached per term and invalidated when the file on disk
// changes, so dropping a fresh <term>.json into the directory takes effect
// without a restart. Returned slices are shared with the cache; callers must
// treat them as read-only.
type FileStore struct {
	dataDir string

	mu    sync.RWMutex
	cache map[string]*cachedDataset
}

type cachedDataset struct {
	sections []models.Section
	modTime  time.Time
	size     int64
}

// NewFileStore creates a FileStore rooted at dataDir, creating the directory
// if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dataDir).Msg("Failed to create dataset directory")
		return nil, fmt.Errorf("failed to create dataset directory %s: %w", dataDir, err)
	}
	logger.Info().Str("path", dataDir).Msg("Dataset directory ensured")

	return &FileStore{
		dataDir: dataDir,
		cache:   make(map[string]*cachedDataset),
	}, nil
}

// datasetPath resolves a term to its file, rejecting anything that could
// escape the data directory. Terms arrive straight from query strings.
func (fs *FileStore) datasetPath(term string) (string, error) {
	if term == "" || term == "." || term == ".." || strings.ContainsAny(term, `/\`) {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("invalid term identifier %q", term))
	}
	return filepath.Join(fs.dataDir, term+".json"), nil
}

// SectionsForTerm returns the decoded dataset for a term. A missing file is
// the "data unavailable" condition (ErrDatasetNotFound), distinct from a
// present dataset that happens to be empty.
func (fs *FileStore) SectionsForTerm(ctx context.Context, term string) ([]models.Section, error) {
	path, err := fs.datasetPath(term)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewDatasetNotFoundError(fmt.Sprintf("no dataset for term %s", term))
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetUnavailable, err)
	}

	fs.mu.RLock()
	cached, ok := fs.cache[term]
	fs.mu.RUnlock()
	if ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cached.sections, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetUnavailable, err)
	}

	var sections []models.Section
	if err := json.Unmarshal(content, &sections); err != nil {
		return nil, fmt.Errorf("%w: term %s: %v", apperrors.ErrDatasetCorrupt, term, err)
	}

	fs.mu.Lock()
	fs.cache[term] = &cachedDataset{
		sections: sections,
		modTime:  info.ModTime(),
		size:     info.Size(),
	}
	fs.mu.Unlock()

	logger.Debug().Str("term", term).Int("sections", len(sections)).Msg("Dataset loaded from disk")
	return sections, nil
}

// ListTerms enumerates the datasets present in the data directory, newest
// term first. Counts come through the per-term cache, so listing stays cheap
// once datasets have been touched.
func (fs *FileStore) ListTerms(ctx context.Context) ([]models.DatasetInfo, error) {
	entries, err := os.ReadDir(fs.dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetUnavailable, err)
	}

	infos := make([]models.DatasetInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		term := strings.TrimSuffix(entry.Name(), ".json")

		fi, err := entry.Info()
		if err != nil {
			continue
		}
		sections, err := fs.SectionsForTerm(ctx, term)
		if err != nil {
			logger.Warn().Err(err).Str("term", term).Msg("Skipping unreadable dataset")
			continue
		}

		modTime := fi.ModTime()
		infos = append(infos, models.DatasetInfo{
			Term:         term,
			SectionCount: len(sections),
			FetchedAt:    &modTime,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Term > infos[j].Term })
	return infos, nil
}

// Ping reports whether the data directory is still readable.
func (fs *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(fs.dataDir); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDatasetUnavailable, err)
	}
	return nil
}

// SaveDataset writes a term dataset atomically (temp file plus rename).
// With overwrite false an existing dataset is an error rather than silently
// replaced.
func (fs *FileStore) SaveDataset(ctx context.Context, term string, sections []models.Section, overwrite bool) error {
	path, err := fs.datasetPath(term)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return apperrors.NewCustomError(apperrors.ErrDatasetAlreadyExists,
				fmt.Sprintf("dataset for term %s already exists", term))
		}
	}

	content, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace dataset: %w", err)
	}

	fs.mu.Lock()
	delete(fs.cache, term)
	fs.mu.Unlock()

	logger.Info().Str("term", term).Int("sections", len(sections)).Msg("Dataset saved")
	return nil
}
