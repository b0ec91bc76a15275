package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonesrussell/gocourses/internal/domain"
)

// AvailableSlugs returns the slugs of all topics that have courses, in
// lexical order.
func (i *Index) AvailableSlugs() []string {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()

	var slugs []string
	for _, slug := range i.sortedSlugs() {
		topic := i.topics[slug]
		if topic.HasCourses() {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}

// AvailableTopics returns the metadata of all topics that have courses,
// sorted by course count descending. Ties break by slug for a stable order.
func (i *Index) AvailableTopics() []domain.Topic {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()

	var topics []domain.Topic
	for _, topic := range i.topics {
		if topic.HasCourses() {
			topics = append(topics, topic)
		}
	}
	sort.Slice(topics, func(a, b int) bool {
		if topics[a].CourseCount != topics[b].CourseCount {
			return topics[a].CourseCount > topics[b].CourseCount
		}
		return topics[a].Slug < topics[b].Slug
	})
	return topics
}

// AllTopics returns the metadata of every indexed topic, including
// metadata-only ones, in lexical slug order.
func (i *Index) AllTopics() []domain.Topic {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()

	topics := make([]domain.Topic, 0, len(i.topics))
	for _, slug := range i.sortedSlugs() {
		topics = append(topics, i.topics[slug])
	}
	return topics
}

// SearchTopics returns slugs matching the query: exact slug matches first,
// then substring matches in either direction, then topics whose display
// name contains the query. Duplicates are removed by first occurrence.
func (i *Index) SearchTopics(query string) []string {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()

	normalized := strings.ToLower(query)
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	queryLower := strings.ToLower(query)

	var exact, substring, byName []string
	for _, slug := range i.sortedSlugs() {
		topic := i.topics[slug]
		switch {
		case slug == normalized:
			exact = append(exact, slug)
		case strings.Contains(slug, normalized) || strings.Contains(normalized, slug):
			substring = append(substring, slug)
		case topic.Name != "" && strings.Contains(strings.ToLower(topic.Name), queryLower):
			byName = append(byName, slug)
		}
	}

	seen := make(map[string]bool)
	var matches []string
	for _, slug := range append(append(exact, substring...), byName...) {
		if !seen[slug] {
			seen[slug] = true
			matches = append(matches, slug)
		}
	}
	return matches
}

// TopicListForLLM returns the pre-formatted topic list inserted into LLM
// prompt templates by the conversational layer.
func (i *Index) TopicListForLLM() string {
	i.ensureBuilt()
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.llmList
}

// formatTopicList renders "- slug (N courses, section)" lines, sorted, for
// every topic with courses.
func formatTopicList(topics map[string]domain.Topic) string {
	var lines []string
	for _, topic := range topics {
		if topic.HasCourses() {
			lines = append(lines,
				fmt.Sprintf("- %s (%d courses, %s)", topic.Slug, topic.CourseCount, topic.Section))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
