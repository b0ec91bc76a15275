// Package domain provides domain models used across the application.
package domain

// Topic represents a subject category backed by zero or one CSV file of
// courses. Topics are discovered once at index-build time and are immutable
// until an explicit index reset.
type Topic struct {
	// Slug is the URL/filename-safe identifier, unique within an index
	Slug string `json:"slug" mapstructure:"slug"`
	// Name is an optional human-readable display name
	Name string `json:"name,omitempty" mapstructure:"name"`
	// URL is the topic listing page this topic was scraped from
	URL string `json:"url,omitempty" mapstructure:"url"`
	// Section is the grouping label (the directory the CSV lives under)
	Section string `json:"section" mapstructure:"section"`
	// CourseCount is the number of data rows in the backing file; 0 means metadata-only
	CourseCount int `json:"course_count" mapstructure:"course_count"`
	// Path is the backing CSV path relative to the courses directory
	Path string `json:"path,omitempty" mapstructure:"path"`
	// FullPath is the absolute backing CSV path, empty for metadata-only topics
	FullPath string `json:"-" mapstructure:"-"`
}

// HasCourses reports whether the topic has at least one backing course row.
func (t *Topic) HasCourses() bool {
	return t.CourseCount > 0
}

// HasBackingFile reports whether a CSV file backs this topic.
func (t *Topic) HasBackingFile() bool {
	return t.FullPath != ""
}

// DisplayName returns the display name, falling back to the slug.
func (t *Topic) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Slug
}
