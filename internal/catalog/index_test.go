package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gocourses/internal/catalog"
	catalogcfg "github.com/jonesrussell/gocourses/internal/config/catalog"
	"github.com/jonesrussell/gocourses/internal/logger"
)

// writeCourseCSV writes a course CSV for a topic under its section directory.
func writeCourseCSV(t *testing.T, root, section, slug, content string) {
	t.Helper()
	dir := filepath.Join(root, section)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".csv"), []byte(content), 0o644))
}

// newTestIndex builds an index over a temp courses directory populated with
// a few topics across two sections.
func newTestIndex(t *testing.T) (*catalog.Index, string) {
	t.Helper()
	root := t.TempDir()

	writeCourseCSV(t, root, "development", "python",
		"title,url,instructor,rating\n"+
			"Complete Python Bootcamp,https://x/c/1,Jose,4.7\n"+
			"Python for Data Analysis,https://x/c/2,Maria,4.5\n")
	writeCourseCSV(t, root, "development", "machine-learning",
		"title,url,instructor,rating\n"+
			"Machine Learning A-Z,https://x/c/3,Kirill,4.6\n")
	writeCourseCSV(t, root, "it-software", "kubernetes",
		"title,url\n"+
			"Kubernetes for Beginners,https://x/c/4\n")
	writeCourseCSV(t, root, "it-software", "empty-topic", "title,url\n")

	cfg := &catalogcfg.Config{CoursesDir: root}
	return catalog.New(cfg, logger.NewNoOp()), root
}

func TestIndexBuild(t *testing.T) {
	t.Parallel()

	idx, _ := newTestIndex(t)
	require.NoError(t, idx.Build())

	python, ok := idx.Topic("python")
	require.True(t, ok)
	require.Equal(t, "development", python.Section)
	require.Equal(t, 2, python.CourseCount)
	require.True(t, python.HasBackingFile())

	empty, ok := idx.Topic("empty-topic")
	require.True(t, ok)
	require.False(t, empty.HasCourses())
	require.True(t, empty.HasBackingFile())

	require.Equal(t, 4, idx.Len())
}

func TestIndexBuildIdempotent(t *testing.T) {
	t.Parallel()

	idx, root := newTestIndex(t)
	require.NoError(t, idx.Build())

	// Adding a topic after the first build must not appear until a reset.
	writeCourseCSV(t, root, "development", "golang",
		"title,url\nGo: The Complete Guide,https://x/c/9\n")

	require.NoError(t, idx.Build())
	_, ok := idx.Topic("golang")
	require.False(t, ok)

	idx.Reset()
	_, ok = idx.Topic("golang")
	require.True(t, ok)
}

func TestIndexMissingDirectory(t *testing.T) {
	t.Parallel()

	cfg := &catalogcfg.Config{CoursesDir: filepath.Join(t.TempDir(), "does-not-exist")}
	idx := catalog.New(cfg, logger.NewNoOp())

	require.NoError(t, idx.Build())
	require.Zero(t, idx.Len())
	require.Empty(t, idx.AvailableSlugs())
}

func TestIndexTopicsFileMerge(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeCourseCSV(t, root, "development", "python",
		"title,url\nComplete Python Bootcamp,https://x/c/1\n")

	topicsFile := filepath.Join(root, "topics.csv")
	require.NoError(t, os.WriteFile(topicsFile, []byte(
		"slug,name,url,section\n"+
			"python,Python,https://x/t/python,development\n"+
			"blockchain,Blockchain Basics,https://x/t/blockchain,it-software\n"), 0o644))

	cfg := &catalogcfg.Config{CoursesDir: root, TopicsFile: topicsFile}
	idx := catalog.New(cfg, logger.NewNoOp())
	require.NoError(t, idx.Build())

	// Scanned topics win over flat-file entries for the same slug.
	python, ok := idx.Topic("python")
	require.True(t, ok)
	require.Equal(t, 1, python.CourseCount)
	require.True(t, python.HasBackingFile())

	// Flat-file-only topics are metadata-only.
	blockchain, ok := idx.Topic("blockchain")
	require.True(t, ok)
	require.Equal(t, "Blockchain Basics", blockchain.Name)
	require.False(t, blockchain.HasCourses())
	require.False(t, blockchain.HasBackingFile())
}

func TestAvailableTopics(t *testing.T) {
	t.Parallel()

	idx, _ := newTestIndex(t)

	slugs := idx.AvailableSlugs()
	require.Equal(t, []string{"kubernetes", "machine-learning", "python"}, slugs)

	topics := idx.AvailableTopics()
	require.Len(t, topics, 3)
	// Sorted by course count descending.
	require.Equal(t, "python", topics[0].Slug)
	require.GreaterOrEqual(t, topics[0].CourseCount, topics[1].CourseCount)
	require.GreaterOrEqual(t, topics[1].CourseCount, topics[2].CourseCount)
}

func TestSearchTopics(t *testing.T) {
	t.Parallel()

	idx, _ := newTestIndex(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "exact match first", query: "python", want: []string{"python"}},
		{name: "space normalizes to hyphen", query: "machine learning", want: []string{"machine-learning"}},
		{name: "substring match", query: "machine", want: []string{"machine-learning"}},
		{name: "no match", query: "cooking", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, idx.SearchTopics(tt.query))
		})
	}
}

func TestSearchTopicsByDisplayName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeCourseCSV(t, root, "development", "python",
		"title,url\nComplete Python Bootcamp,https://x/c/1\n")
	topicsFile := filepath.Join(root, "topics.csv")
	require.NoError(t, os.WriteFile(topicsFile, []byte(
		"slug,name,url,section\n"+
			"csharp-unity,C# Game Development,https://x/t/unity,development\n"), 0o644))

	cfg := &catalogcfg.Config{CoursesDir: root, TopicsFile: topicsFile}
	idx := catalog.New(cfg, logger.NewNoOp())

	require.Equal(t, []string{"csharp-unity"}, idx.SearchTopics("Game Development"))
}

func TestTopicListForLLM(t *testing.T) {
	t.Parallel()

	idx, _ := newTestIndex(t)

	list := idx.TopicListForLLM()
	require.Contains(t, list, "- python (2 courses, development)")
	require.Contains(t, list, "- kubernetes (1 courses, it-software)")
	require.NotContains(t, list, "empty-topic")
}

func TestValidateTopics(t *testing.T) {
	t.Parallel()

	idx, _ := newTestIndex(t)

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "exact slug", input: []string{"python"}, want: []string{"python"}},
		{name: "abbreviation alias", input: []string{"ml"}, want: []string{"machine-learning"}},
		{name: "k8s alias", input: []string{"k8s"}, want: []string{"kubernetes"}},
		{name: "hyphen removed alias", input: []string{"machinelearning"}, want: []string{"machine-learning"}},
		{name: "space variant alias", input: []string{"machine learning"}, want: []string{"machine-learning"}},
		{name: "case and whitespace", input: []string{"  Python "}, want: []string{"python"}},
		{name: "fuzzy typo", input: []string{"machine-lerning"}, want: []string{"machine-learning"}},
		{name: "unknown dropped", input: []string{"underwater-basket-weaving"}, want: []string{}},
		{name: "empty input dropped", input: []string{""}, want: []string{}},
		{
			name:  "order preserved and deduplicated",
			input: []string{"kubernetes", "ml", "machine-learning", "python"},
			want:  []string{"kubernetes", "machine-learning", "python"},
		},
		{
			name:  "topic without courses dropped",
			input: []string{"empty-topic"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, idx.ValidateTopics(tt.input))
		})
	}
}

// The fuzzy stage accepts a similarity of exactly 0.70 and rejects anything
// below it.
func TestValidateTopicsFuzzyThreshold(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	// 7 of 10 characters shared with the queries below.
	writeCourseCSV(t, root, "misc", "aaaaaaayyy",
		"title,url\nPlaceholder,https://x/c/1\n")

	cfg := &catalogcfg.Config{CoursesDir: root}
	idx := catalog.New(cfg, logger.NewNoOp())

	// ratio("aaaaaaaxxx", "aaaaaaayyy") == 14/20 == 0.70 exactly: accepted.
	require.Equal(t, []string{"aaaaaaayyy"}, idx.ValidateTopics([]string{"aaaaaaaxxx"}))

	// ratio("aaaaaahxxx", "aaaaaaayyy") == 12/20 == 0.60: rejected.
	require.Empty(t, idx.ValidateTopics([]string{"aaaaaahxxx"}))
}
