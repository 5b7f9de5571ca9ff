// Package store provides durable load/save of the ledger document.
package store

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"allowance/internal/config"
	"allowance/internal/dateutils"
	"allowance/internal/fileutils"
	"allowance/internal/ledgererror"
	"allowance/internal/models"
)

// DefaultDataFile is the document path used when none is configured.
const DefaultDataFile = "finance_data.json"

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store loads and saves the whole ledger document as one JSON file.
type Store struct {
	// Path is the location of the document file.
	Path string
	// SeedCategories is the category list a fresh install starts with.
	SeedCategories []string
}

// New creates a store for the given path. An empty path falls back to
// DefaultDataFile; a nil seed falls back to models.DefaultCategories.
func New(path string, seed []string) *Store {
	if path == "" {
		path = DefaultDataFile
	}
	if seed == nil {
		seed = models.DefaultCategories
	}
	return &Store{Path: path, SeedCategories: seed}
}

// Load reads the persisted document. It never fails:
//   - a missing file yields a fresh default document with the seeded
//     category list,
//   - an unreadable or unparseable file yields a minimal safe default with
//     empty categories (the fresh-install seed is deliberately not applied
//     on corrupt recovery),
//   - a readable document has missing fields backfilled with defaults.
func (s *Store) Load() *models.Document {
	monthKey := dateutils.CurrentMonthKey()

	if !fileutils.FileExists(s.Path) {
		log.WithField("file", s.Path).Debug("No data file found, starting fresh")
		return models.NewDocument(monthKey, s.SeedCategories)
	}

	data, err := fileutils.ReadFile(s.Path)
	if err != nil {
		log.WithError(err).WithField("file", s.Path).Warn("Data file unreadable, recovering with empty document")
		return models.NewDocument(monthKey, nil)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithError(err).WithField("file", s.Path).Warn("Data file corrupt, recovering with empty document")
		return models.NewDocument(monthKey, nil)
	}

	doc.Normalize(monthKey)
	log.WithFields(logrus.Fields{
		"file":         s.Path,
		"month":        doc.CurrentMonth,
		"transactions": len(doc.Transactions),
	}).Debug("Loaded document")
	return &doc
}

// Save persists the document as a full overwrite. The write is atomic from
// the caller's perspective: data goes to a temp file that is renamed over
// the target, so a crash never leaves a partial document behind.
func (s *Store) Save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &ledgererror.StorageError{Op: "save", Path: s.Path, Err: err}
	}

	if err := fileutils.WriteFileAtomic(s.Path, data, 0644); err != nil {
		log.WithError(err).WithField("file", s.Path).Error("Failed to save document")
		return &ledgererror.StorageError{Op: "save", Path: s.Path, Err: err}
	}

	log.WithField("file", s.Path).Debug("Saved document")
	return nil
}
