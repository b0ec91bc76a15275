package api

import "github.com/jonesrussell/gocourses/internal/domain"

// ValidateRequest is the body of POST /api/v1/topics/validate.
type ValidateRequest struct {
	// Topics are free-text topic references to resolve
	Topics []string `json:"topics" binding:"required"`
}

// ValidateResponse returns the canonical slugs the inputs resolved to.
type ValidateResponse struct {
	Topics []string `json:"topics"`
}

// TopicsResponse lists topic metadata.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
	Total  int            `json:"total"`
}

// TopicSearchResponse lists slugs matching a topic query.
type TopicSearchResponse struct {
	Query   string   `json:"query"`
	Matches []string `json:"matches"`
}

// CoursesResponse lists courses loaded for one or more topics.
type CoursesResponse struct {
	Courses []domain.Course `json:"courses"`
	Total   int             `json:"total"`
}

// CourseMatchResponse is the best course match for a name query.
type CourseMatchResponse struct {
	Query  string        `json:"query"`
	Course domain.Course `json:"course"`
	Score  float64       `json:"score"`
	URL    string        `json:"url"`
}
