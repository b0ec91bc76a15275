package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/repository"
)

func TestMatchScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		title string
		want  float64
	}{
		{
			name:  "exact match ignoring case",
			query: "complete python bootcamp",
			title: "Complete Python Bootcamp",
			want:  1.0,
		},
		{
			name:  "query contained in title",
			query: "python bootcamp",
			title: "Complete Python Bootcamp 2024",
			want:  0.9,
		},
		{
			name:  "title contained in query",
			query: "the complete docker mastery course please",
			title: "Docker Mastery",
			want:  0.85,
		},
		{
			name:  "three word overlap capped",
			query: "python machine learning bootcamp",
			title: "Machine Learning Bootcamp in R and Python",
			want:  0.8,
		},
		{
			name:  "two word overlap",
			query: "advanced python web development",
			title: "Python for Web Designers",
			want:  0.5,
		},
		{
			name:  "single word overlap",
			query: "docker essentials",
			title: "Docker Deep Dive",
			want:  0.25,
		},
		{
			name:  "stop words carry no weight",
			query: "a course for gardening",
			title: "Gardening Masterclass",
			want:  0.5,
		},
		{
			name:  "no overlap",
			query: "watercolor painting",
			title: "Docker Mastery",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.InDelta(t, tt.want, repository.MatchScore(tt.query, tt.title), 1e-9)
		})
	}
}

func TestSearchCourseByName(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)

	// Nothing cached: the query names a topic word, so the python topic is
	// loaded on demand.
	course, score, ok := repo.SearchCourseByName("Complete Python Bootcamp", nil, idx)
	require.True(t, ok)
	require.InDelta(t, 1.0, score, 1e-9)
	require.Equal(t, "https://x/c/1", course.URL)
}

func TestSearchCourseByNamePriorResultsShortCircuit(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)
	prior := []domain.Course{{Title: "Docker Mastery", URL: "https://x/c/4"}}

	course, score, ok := repo.SearchCourseByName("docker mastery", prior, idx)
	require.True(t, ok)
	require.InDelta(t, 1.0, score, 1e-9)
	require.Equal(t, "https://x/c/4", course.URL)

	// A prior hit means no topic had to be loaded.
	require.Zero(t, repo.CacheStats().CachedTopics)
}

func TestSearchCourseByNameCachedPool(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)
	topic, ok := idx.Topic("docker")
	require.True(t, ok)
	_, err := repo.LoadTopicCourses(topic)
	require.NoError(t, err)

	course, score, found := repo.SearchCourseByName("Docker Mastery", nil, idx)
	require.True(t, found)
	require.InDelta(t, 1.0, score, 1e-9)
	require.Equal(t, "Docker Mastery", course.Title)
}

func TestSearchCourseByNameBelowFloor(t *testing.T) {
	t.Parallel()

	repo, idx, _ := newFixture(t)

	_, _, ok := repo.SearchCourseByName("watercolor painting", nil, idx)
	require.False(t, ok)
}

func TestGenerateCourseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{title: "Complete Python Bootcamp", want: "https://www.udemy.com/course/complete-python-bootcamp/"},
		{title: "C# Basics: Learn Fast!", want: "https://www.udemy.com/course/c-basics-learn-fast/"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, repository.GenerateCourseURL(tt.title))
		})
	}
}
