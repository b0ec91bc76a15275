package domain

// CacheStats is a snapshot of the course cache.
type CacheStats struct {
	// CachedTopics is the number of topics with a cached course list
	CachedTopics int `json:"cached_topics"`
	// TotalCourses is the sum of cached course counts across topics
	TotalCourses int `json:"total_courses"`
	// Topics maps each cached slug to its course count
	Topics map[string]int `json:"topics"`
}
