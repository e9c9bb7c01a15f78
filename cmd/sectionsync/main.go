// Command sectionsync manages term section datasets: it crawls the campus
// Banner registration system for a full term, imports existing dataset
// files, and refreshes live enrollment counts. Datasets land in whichever
// backend the service is configured with (file directory or Postgres), so
// the API picks them up without a restart.
//
// Usage:
//
//	sectionsync -term 202601 -jsessionid <cookie>          full crawl
//	sectionsync -from-file 202509.json -as-term 202601     import, cloned to a new term
//	sectionsync -term 202601 -jsessionid <cookie> -refresh-enrollment
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"

	"github.com/ahatanar/StudentSpace/internal/app/models"
	"github.com/ahatanar/StudentSpace/internal/bootstrap"
	"github.com/ahatanar/StudentSpace/internal/config"
	"github.com/ahatanar/StudentSpace/internal/pkg/banner"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
)

// DatasetStore is the write side of the configured dataset backend.
type DatasetStore interface {
	SectionsForTerm(ctx context.Context, term string) ([]models.Section, error)
	SaveDataset(ctx context.Context, term string, sections []models.Section, overwrite bool) error
}

func main() {
	term := flag.String("term", "", "term identifier, e.g. 202601")
	jsessionID := flag.String("jsessionid", "", "JSESSIONID cookie from a logged-in Banner browser session")
	fromFile := flag.String("from-file", "", "import an existing dataset file instead of crawling")
	asTerm := flag.String("as-term", "", "rewrite every term field while importing (clones one term's data as another)")
	refreshEnrollment := flag.Bool("refresh-enrollment", false, "re-query live enrollment for an existing dataset")
	overwrite := flag.Bool("overwrite", true, "replace an existing dataset for the term")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	source, dbPool, err := bootstrap.SetupSectionSource(cfg, lgr)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize dataset store")
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	store, ok := source.(DatasetStore)
	if !ok {
		logger.Fatal().Msg("Configured dataset source does not support writes")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case *fromFile != "":
		err = runImport(ctx, store, *fromFile, *term, *asTerm, *overwrite)
	case *refreshEnrollment:
		err = runRefresh(ctx, store, cfg, *term, *jsessionID, *overwrite)
	default:
		err = runFetch(ctx, store, cfg, *term, *jsessionID, *overwrite)
	}
	if err != nil {
		logger.Error().Err(err).Msg("sectionsync failed")
		os.Exit(1)
	}
}

// runFetch crawls the full term from Banner and stores the result.
func runFetch(ctx context.Context, store DatasetStore, cfg *config.Config, term, jsessionID string, overwrite bool) error {
	if term == "" {
		term = cfg.Sections.DefaultTerm
	}
	if jsessionID == "" {
		return fmt.Errorf("-jsessionid is required for a crawl")
	}

	logger.Info().Str("term", term).Msg("Starting term crawl")
	client := banner.NewClient(jsessionID)
	sections, err := client.AllSections(ctx, term)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	return store.SaveDataset(ctx, term, sections, overwrite)
}

// runImport loads a dataset file into the store, optionally retagged as a
// different term.
func runImport(ctx context.Context, store DatasetStore, path, term, asTerm string, overwrite bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset file: %w", err)
	}

	var sections []models.Section
	if err := json.Unmarshal(content, &sections); err != nil {
		return fmt.Errorf("failed to decode dataset file: %w", err)
	}
	logger.Info().Str("file", path).Int("sections", len(sections)).Msg("Dataset file loaded")

	target := term
	if asTerm != "" {
		target = asTerm
		retagTerm(sections, asTerm)
		logger.Info().Str("term", asTerm).Msg("Dataset retagged")
	}
	if target == "" {
		// Fall back to the filename, the convention for dataset files
		target = strings.TrimSuffix(filepath.Base(path), ".json")
	}

	return store.SaveDataset(ctx, target, sections, overwrite)
}

// runRefresh re-queries live enrollment per CRN for a stored dataset and
// writes the updated counts back.
func runRefresh(ctx context.Context, store DatasetStore, cfg *config.Config, term, jsessionID string, overwrite bool) error {
	if term == "" {
		term = cfg.Sections.DefaultTerm
	}
	if jsessionID == "" {
		return fmt.Errorf("-jsessionid is required to refresh enrollment")
	}

	sections, err := store.SectionsForTerm(ctx, term)
	if err != nil {
		return fmt.Errorf("failed to load stored dataset: %w", err)
	}

	client := banner.NewClient(jsessionID)
	updated, err := client.RefreshEnrollment(ctx, term, sections)
	if err != nil {
		return fmt.Errorf("enrollment refresh failed: %w", err)
	}
	logger.Info().Str("term", term).Int("updated", updated).Int("total", len(sections)).Msg("Enrollment refreshed")

	return store.SaveDataset(ctx, term, sections, overwrite)
}

// retagTerm rewrites every embedded term field so a dataset can stand in for
// another term.
func retagTerm(sections []models.Section, term string) {
	for i := range sections {
		sections[i].Term = term
		for j := range sections[i].MeetingsFaculty {
			sections[i].MeetingsFaculty[j].Term = term
			if mt := sections[i].MeetingsFaculty[j].MeetingTime; mt != nil {
				mt.Term = term
			}
		}
		for j := range sections[i].Faculty {
			sections[i].Faculty[j].Term = term
		}
	}
}
