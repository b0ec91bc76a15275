package catalog

import (
	"strings"

	"github.com/jonesrussell/gocourses/internal/textmatch"
)

// Fuzzy matching thresholds. A containment match is scored from a 0.8 base
// plus a length-ratio bonus so near-equal-length matches win over matches
// buried in much longer slugs.
const (
	fuzzyThreshold        = 0.7
	containmentBaseScore  = 0.8
	containmentBonusScale = 0.2
)

// ValidateTopics resolves free-text topic references to canonical slugs.
// Each input is tried against the resolution pipeline in order: exact slug
// match, alias table, fuzzy match. Inputs that fail every stage are dropped
// silently. The result preserves input order and contains no duplicates.
func (i *Index) ValidateTopics(raw []string) []string {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()

	validated := make([]string, 0, len(raw))
	seen := make(map[string]bool)

	accept := func(slug string) {
		if !seen[slug] {
			seen[slug] = true
			validated = append(validated, slug)
		}
	}

	for _, input := range raw {
		if input == "" {
			continue
		}
		normalized := strings.ToLower(strings.TrimSpace(input))

		if topic, ok := i.topics[normalized]; ok && topic.HasCourses() {
			accept(normalized)
			continue
		}

		if target, ok := i.aliases[normalized]; ok {
			accept(target)
			continue
		}

		if match, ok := i.fuzzyMatchTopic(normalized); ok {
			accept(match)
		}
	}

	return validated
}

// fuzzyMatchTopic finds the best fuzzy match for a topic query among slugs
// that have courses. Callers must hold at least the read lock.
func (i *Index) fuzzyMatchTopic(query string) (string, bool) {
	var bestMatch string
	bestScore := 0.0
	queryNorm := textmatch.NormalizeCompact(query)

	for _, slug := range i.sortedSlugs() {
		topic := i.topics[slug]
		if !topic.HasCourses() {
			continue
		}
		slugNorm := textmatch.NormalizeCompact(slug)

		// Containment in either direction scores above the plain ratio.
		if strings.Contains(slugNorm, queryNorm) || strings.Contains(queryNorm, slugNorm) {
			score := containmentBaseScore +
				containmentBonusScale*float64(len(queryNorm))/float64(len(slugNorm))
			if score > bestScore {
				bestScore = score
				bestMatch = slug
			}
			continue
		}

		score := textmatch.Ratio(queryNorm, slugNorm)
		if score >= fuzzyThreshold && score > bestScore {
			bestScore = score
			bestMatch = slug
		}
	}

	return bestMatch, bestMatch != ""
}
