package textmatch

import (
	"regexp"
	"strings"
)

var (
	// slugInvalidChars matches characters that do not belong in a URL slug.
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	// slugSeparators matches runs of whitespace and underscores.
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	// slugHyphenRuns collapses consecutive hyphens.
	slugHyphenRuns = regexp.MustCompile(`-+`)

	// compactNormalizer strips the separators that vary between slug spellings.
	compactNormalizer = strings.NewReplacer("-", "", "_", "", " ", "")
)

// Slugify converts free text into a URL/filename-safe slug: lowercase,
// special characters removed, whitespace and underscores collapsed to
// single hyphens.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NormalizeCompact lowercases text and removes hyphens, underscores and
// spaces so that "machine-learning", "machine learning" and
// "machinelearning" compare equal.
func NormalizeCompact(text string) string {
	return compactNormalizer.Replace(strings.ToLower(text))
}
