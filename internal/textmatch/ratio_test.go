package textmatch_test

import (
	"testing"

	"github.com/jonesrussell/gocourses/internal/textmatch"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical strings", a: "python", b: "python", want: 1},
		{name: "no common characters", a: "abc", b: "xyz", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "one empty", a: "python", b: "", want: 0},
		// 7 matched chars over 20 total: exactly the 0.70 threshold.
		{name: "exact seventy percent", a: "aaaaaaaxxx", b: "aaaaaaayyy", want: 0.7},
		// difflib.SequenceMatcher(None, "machinelearning", "machinelerning").ratio()
		{name: "single deletion", a: "machinelearning", b: "machinelerning", want: 2 * 14.0 / 29.0},
		{name: "transposed halves", a: "abcd", b: "cdab", want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.InDelta(t, tt.want, textmatch.Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatioSymmetricBounds(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"javascript", "typescript"},
		{"datascience", "datascientist"},
		{"go", "golang"},
	}
	for _, pair := range pairs {
		forward := textmatch.Ratio(pair[0], pair[1])
		require.GreaterOrEqual(t, forward, 0.0)
		require.LessOrEqual(t, forward, 1.0)
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces to hyphens", input: "Complete Python Bootcamp", want: "complete-python-bootcamp"},
		{name: "special characters dropped", input: "C++: From Zero to Hero!", want: "c-from-zero-to-hero"},
		{name: "underscores and runs collapse", input: "deep__learning  -- basics", want: "deep-learning-basics"},
		{name: "edge hyphens trimmed", input: " - react native - ", want: "react-native"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, textmatch.Slugify(tt.input))
		})
	}
}

func TestNormalizeCompact(t *testing.T) {
	t.Parallel()

	require.Equal(t, "machinelearning", textmatch.NormalizeCompact("Machine-Learning"))
	require.Equal(t, "machinelearning", textmatch.NormalizeCompact("machine learning"))
	require.Equal(t, "machinelearning", textmatch.NormalizeCompact("machine_learning"))
}
