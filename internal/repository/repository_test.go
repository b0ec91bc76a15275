package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gocourses/internal/catalog"
	catalogcfg "github.com/jonesrussell/gocourses/internal/config/catalog"
	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/logger"
	"github.com/jonesrussell/gocourses/internal/repository"
)

// writeCourseCSV writes a course CSV for a topic under its section directory.
func writeCourseCSV(t *testing.T, root, section, slug, content string) {
	t.Helper()
	dir := filepath.Join(root, section)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".csv"), []byte(content), 0o644))
}

// newFixture returns a repository and an index over a temp courses
// directory. One course URL is shared between python and machine-learning
// to exercise deduplication.
func newFixture(t *testing.T) (*repository.Repository, *catalog.Index, string) {
	t.Helper()
	root := t.TempDir()

	writeCourseCSV(t, root, "development", "python",
		"title,url,instructor,price\n"+
			"Complete Python Bootcamp,https://x/c/1,Jose,$12.99\n"+
			"Python for Machine Learning,https://x/c/shared,Maria,$9.99\n"+
			",https://x/c/untitled,Nobody,$1.00\n")
	writeCourseCSV(t, root, "development", "machine-learning",
		"title,url,instructor,price\n"+
			"Python for Machine Learning,https://x/c/shared,Maria,$9.99\n"+
			"Machine Learning A-Z,https://x/c/3,Kirill,$14.99\n")
	writeCourseCSV(t, root, "it-software", "docker",
		"title,url\nDocker Mastery,https://x/c/4\n")

	cfg := &catalogcfg.Config{CoursesDir: root}
	idx := catalog.New(cfg, logger.NewNoOp())
	return repository.New(logger.NewNoOp()), idx, root
}

func TestLoadTopicCourses(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)
	topic, ok := idx.Topic("python")
	require.True(t, ok)

	courses, err := repo.LoadTopicCourses(topic)
	require.NoError(t, err)
	// The untitled row is dropped.
	require.Len(t, courses, 2)
	require.Equal(t, "Complete Python Bootcamp", courses[0].Title)
	require.Equal(t, "python", courses[0].Topic)
	require.Equal(t, "development", courses[0].Section)
}

func TestLoadTopicCoursesCaching(t *testing.T) {
	t.Parallel()

	repo, idx, root := newFixture(t)
	topic, ok := idx.Topic("docker")
	require.True(t, ok)

	first, err := repo.LoadTopicCourses(topic)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Growing the file is invisible until the cache is cleared.
	writeCourseCSV(t, root, "it-software", "docker",
		"title,url\nDocker Mastery,https://x/c/4\nDocker Deep Dive,https://x/c/5\n")

	again, err := repo.LoadTopicCourses(topic)
	require.NoError(t, err)
	require.Len(t, again, 1)

	repo.ClearCache()
	reloaded, err := repo.LoadTopicCourses(topic)
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
}

func TestLoadTopicCoursesNoBackingFile(t *testing.T) {
	t.Parallel()

	repo, _, _ := newFixture(t)
	courses, err := repo.LoadTopicCourses(domain.Topic{Slug: "blockchain"})
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestLoadMultipleTopics(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)

	deduped, err := repo.LoadMultipleTopics([]string{"python", "machine-learning"}, idx, true)
	require.NoError(t, err)
	require.Len(t, deduped, 3)

	// The shared course keeps the tag of the topic it was first seen under.
	var sharedTopic string
	for _, course := range deduped {
		if course.URL == "https://x/c/shared" {
			sharedTopic = course.Topic
		}
	}
	require.Equal(t, "python", sharedTopic)

	raw, err := repo.LoadMultipleTopics([]string{"python", "machine-learning"}, idx, false)
	require.NoError(t, err)
	require.Len(t, raw, 4)

	// Unknown slugs are skipped, not fatal.
	some, err := repo.LoadMultipleTopics([]string{"python", "no-such-topic"}, idx, true)
	require.NoError(t, err)
	require.Len(t, some, 2)
}

func TestLoadAllCourses(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)

	all, err := repo.LoadAllCourses(idx)
	require.NoError(t, err)
	// No deduplication: the shared course appears under both topics.
	require.Len(t, all, 5)
}

func TestCacheStats(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)

	stats := repo.CacheStats()
	require.Zero(t, stats.CachedTopics)

	_, err := repo.LoadMultipleTopics([]string{"python", "docker"}, idx, false)
	require.NoError(t, err)

	stats = repo.CacheStats()
	require.Equal(t, 2, stats.CachedTopics)
	require.Equal(t, 3, stats.TotalCourses)
	require.Equal(t, 2, stats.Topics["python"])
	require.Equal(t, 1, stats.Topics["docker"])

	repo.ClearCache()
	require.Zero(t, repo.CacheStats().CachedTopics)
}
