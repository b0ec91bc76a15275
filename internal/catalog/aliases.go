package catalog

import (
	"sort"
	"strings"

	"github.com/jonesrussell/gocourses/internal/domain"
)

// topicAbbreviations maps common shorthand to canonical topic slugs.
// Entries only take effect when the target slug exists with courses.
var topicAbbreviations = map[string]string{
	"ml":      "machine-learning",
	"ai":      "artificial-intelligence",
	"dl":      "deep-learning",
	"ds":      "data-science",
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",
	"cpp":     "c++",
	"csharp":  "c#",
	"k8s":     "kubernetes",
	"aws":     "amazon-web-services",
	"gcp":     "google-cloud",
	"nlp":     "natural-language-processing",
	"cv":      "computer-vision",
	"reactjs": "react",
	"nodejs":  "nodejs",
	"vuejs":   "vue",
}

// buildAliases derives the alias table for a topic set: the fixed
// abbreviations filtered to targets that actually have courses, plus
// hyphen-removed and hyphen-to-space variants of every valid slug.
// First-seen entries win so the table is deterministic.
func buildAliases(topics map[string]domain.Topic) map[string]string {
	aliases := make(map[string]string)

	for alias, target := range topicAbbreviations {
		if topic, ok := topics[target]; ok && topic.HasCourses() {
			aliases[alias] = target
		}
	}

	slugs := make([]string, 0, len(topics))
	for slug := range topics {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		topic := topics[slug]
		if !topic.HasCourses() {
			continue
		}
		noHyphen := strings.ReplaceAll(slug, "-", "")
		if noHyphen != slug {
			if _, taken := aliases[noHyphen]; !taken {
				aliases[noHyphen] = slug
			}
		}
		withSpace := strings.ReplaceAll(slug, "-", " ")
		if withSpace != slug {
			if _, taken := aliases[withSpace]; !taken {
				aliases[withSpace] = slug
			}
		}
	}

	return aliases
}
