// Package repository loads course rows from per-topic CSV files and caches
// them in memory, with cross-topic deduplication and fuzzy course-name
// search on top of the cached data.
package repository

import (
	"sync"

	"github.com/jonesrussell/gocourses/internal/catalog"
	"github.com/jonesrussell/gocourses/internal/csvfile"
	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/logger"
)

// Repository caches course lists per topic slug. Construct with New; all
// methods are safe for concurrent use.
type Repository struct {
	log logger.Interface

	mu    sync.RWMutex
	cache map[string][]domain.Course
}

// New creates an empty course repository.
func New(log logger.Interface) *Repository {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Repository{
		log:   log.WithComponent("repository"),
		cache: make(map[string][]domain.Course),
	}
}

// LoadTopicCourses returns the courses for one topic, loading its CSV on the
// first call and serving the cached list afterwards. A topic without a
// backing file yields an empty list. Callers must not mutate the returned
// slice; it is shared until ClearCache.
func (r *Repository) LoadTopicCourses(topic domain.Topic) ([]domain.Course, error) {
	r.mu.RLock()
	cached, ok := r.cache[topic.Slug]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	courses, err := r.loadFromFile(topic)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[topic.Slug] = courses
	r.mu.Unlock()

	r.log.Debug("Loaded topic courses",
		"topic", topic.Slug,
		"courses", len(courses),
	)
	return courses, nil
}

// loadFromFile reads and decodes every row of the topic's CSV, stamping each
// course with the topic slug and section it came from.
func (r *Repository) loadFromFile(topic domain.Topic) ([]domain.Course, error) {
	if !topic.HasBackingFile() {
		r.log.Warn("Topic has no backing file", "topic", topic.Slug)
		return []domain.Course{}, nil
	}

	rows, err := csvfile.ReadFileRows(topic.FullPath)
	if err != nil {
		r.log.Warn("Failed to read course file",
			"topic", topic.Slug,
			"path", topic.FullPath,
			"error", err,
		)
		return []domain.Course{}, nil
	}

	courses := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		course, decodeErr := domain.CourseFromRow(row)
		if decodeErr != nil {
			r.log.Warn("Skipping undecodable course row",
				"topic", topic.Slug,
				"error", decodeErr,
			)
			continue
		}
		if !course.IsValid() {
			continue
		}
		course.Topic = topic.Slug
		course.Section = topic.Section
		courses = append(courses, course)
	}
	return courses, nil
}

// LoadMultipleTopics returns the combined courses of several topics, in the
// order the slugs are given. With dedupe set, a course appearing under more
// than one topic is kept once, tagged with the first topic it was seen
// under. Unknown slugs are skipped.
func (r *Repository) LoadMultipleTopics(slugs []string, idx *catalog.Index, dedupe bool) ([]domain.Course, error) {
	var combined []domain.Course
	seen := make(map[string]bool)

	for _, slug := range slugs {
		topic, ok := idx.Topic(slug)
		if !ok {
			r.log.Warn("Skipping unknown topic", "topic", slug)
			continue
		}
		courses, err := r.LoadTopicCourses(topic)
		if err != nil {
			return nil, err
		}
		for _, course := range courses {
			if dedupe {
				key := course.DedupKey()
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			combined = append(combined, course)
		}
	}

	r.log.Debug("Loaded multiple topics",
		"topics", len(slugs),
		"courses", len(combined),
		"dedupe", dedupe,
	)
	return combined, nil
}

// LoadAllCourses returns the courses of every topic in the index that has
// courses, without deduplication.
func (r *Repository) LoadAllCourses(idx *catalog.Index) ([]domain.Course, error) {
	return r.LoadMultipleTopics(idx.AvailableSlugs(), idx, false)
}

// CachedSlugs returns the slugs currently held in the cache, in load order
// indeterminate; callers sort when order matters.
func (r *Repository) CachedSlugs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := make([]string, 0, len(r.cache))
	for slug := range r.cache {
		slugs = append(slugs, slug)
	}
	return slugs
}

// ClearCache drops every cached course list.
func (r *Repository) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string][]domain.Course)
	r.log.Info("Course cache cleared")
}

// CacheStats reports the cache size per topic and in total.
func (r *Repository) CacheStats() domain.CacheStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := domain.CacheStats{
		Topics: make(map[string]int, len(r.cache)),
	}
	for slug, courses := range r.cache {
		stats.Topics[slug] = len(courses)
		stats.TotalCourses += len(courses)
	}
	stats.CachedTopics = len(r.cache)
	return stats
}
