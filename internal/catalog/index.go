// Package catalog builds and queries the topic index: the catalog of every
// topic discovered under the courses directory, with alias and fuzzy
// resolution of free-text topic references to canonical slugs.
//
// The index is read-mostly: it is built once per process (one file read per
// topic to count rows) and cached until an explicit Reset. All methods are
// safe for concurrent use.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	catalogcfg "github.com/jonesrussell/gocourses/internal/config/catalog"
	"github.com/jonesrussell/gocourses/internal/csvfile"
	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/logger"
)

// Index is the topic catalog. Construct with New and share by reference;
// the zero value is not usable.
type Index struct {
	cfg *catalogcfg.Config
	log logger.Interface

	mu      sync.RWMutex
	topics  map[string]domain.Topic
	aliases map[string]string
	llmList string
	built   bool
}

// New creates a new topic index over the configured courses directory.
// The index is built lazily on first access.
func New(cfg *catalogcfg.Config, log logger.Interface) *Index {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Index{
		cfg: cfg,
		log: log.WithComponent("catalog"),
	}
}

// Build scans the courses directory and builds the topic index. A second
// call returns without rescanning; use Reset to force a rebuild. A missing
// courses directory yields an empty index rather than an error.
func (i *Index) Build() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.buildLocked()
}

// buildLocked builds the index. Callers must hold the write lock.
func (i *Index) buildLocked() error {
	if i.built {
		return nil
	}

	i.log.Info("Building topic index", "courses_dir", i.cfg.CoursesDir)
	topics := make(map[string]domain.Topic)

	if err := i.scanCoursesDir(topics); err != nil {
		i.log.Warn("Failed to scan courses directory",
			"courses_dir", i.cfg.CoursesDir,
			"error", err,
		)
	}
	i.mergeTopicsFile(topics)

	i.topics = topics
	i.aliases = buildAliases(topics)
	i.llmList = formatTopicList(topics)
	i.built = true

	withCourses := 0
	for _, topic := range topics {
		if topic.HasCourses() {
			withCourses++
		}
	}
	i.log.Info("Topic index built",
		"topics", len(topics),
		"topics_with_courses", withCourses,
	)

	return nil
}

// scanCoursesDir walks <courses_dir>/<section>/<slug>.csv and records one
// topic per CSV file found.
func (i *Index) scanCoursesDir(topics map[string]domain.Topic) error {
	sections, err := os.ReadDir(i.cfg.CoursesDir)
	if err != nil {
		return fmt.Errorf("failed to read courses directory: %w", err)
	}

	for _, section := range sections {
		if !section.IsDir() {
			continue
		}
		sectionDir := filepath.Join(i.cfg.CoursesDir, section.Name())
		files, readErr := os.ReadDir(sectionDir)
		if readErr != nil {
			i.log.Warn("Failed to read section directory",
				"section", section.Name(),
				"error", readErr,
			)
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".csv") {
				continue
			}
			slug := strings.TrimSuffix(file.Name(), ".csv")
			if slug == "" {
				continue
			}
			fullPath := filepath.Join(sectionDir, file.Name())

			count, countErr := csvfile.CountRows(fullPath)
			if countErr != nil {
				i.log.Warn("Failed to count courses",
					"path", fullPath,
					"error", countErr,
				)
				count = 0
			}

			topics[slug] = domain.Topic{
				Slug:        slug,
				Section:     section.Name(),
				CourseCount: count,
				Path:        filepath.Join(section.Name(), file.Name()),
				FullPath:    fullPath,
			}
		}
	}

	return nil
}

// mergeTopicsFile merges the optional flat topics CSV (slug,name,url,section)
// as metadata-only entries for slugs not already discovered.
func (i *Index) mergeTopicsFile(topics map[string]domain.Topic) {
	if i.cfg.TopicsFile == "" {
		return
	}

	if _, err := os.Stat(i.cfg.TopicsFile); err != nil {
		return
	}

	rows, err := csvfile.ReadFileRows(i.cfg.TopicsFile)
	if err != nil {
		i.log.Warn("Failed to read topics file",
			"path", i.cfg.TopicsFile,
			"error", err,
		)
		return
	}

	for _, row := range rows {
		slug := row["slug"]
		if slug == "" {
			continue
		}
		if _, exists := topics[slug]; exists {
			continue
		}
		name := row["name"]
		if name == "" {
			name = slug
		}
		topics[slug] = domain.Topic{
			Slug:        slug,
			Name:        name,
			URL:         row["url"],
			Section:     row["section"],
			CourseCount: 0,
		}
	}
}

// Reset clears the index so the next access rebuilds it.
func (i *Index) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.topics = nil
	i.aliases = nil
	i.llmList = ""
	i.built = false
	i.log.Info("Topic index reset")
}

// ensureBuilt lazily builds the index on first access.
func (i *Index) ensureBuilt() {
	i.mu.RLock()
	built := i.built
	i.mu.RUnlock()
	if built {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	_ = i.buildLocked()
}

// Topic returns the metadata for a slug.
func (i *Index) Topic(slug string) (domain.Topic, bool) {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()
	topic, ok := i.topics[slug]
	return topic, ok
}

// Len returns the number of indexed topics, with or without courses.
func (i *Index) Len() int {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.topics)
}

// sortedSlugs returns all slugs in lexical order. Map iteration order is
// random in Go, and resolution ties must be deterministic.
// Callers must hold at least the read lock.
func (i *Index) sortedSlugs() []string {
	slugs := make([]string, 0, len(i.topics))
	for slug := range i.topics {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
