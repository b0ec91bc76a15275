package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gocourses/internal/catalog"
	"github.com/jonesrussell/gocourses/internal/logger"
	"github.com/jonesrussell/gocourses/internal/repository"
)

type handlers struct {
	idx  *catalog.Index
	repo *repository.Repository
	log  logger.Interface
}

// listTopics returns topics with courses, most-populated first. With
// ?all=true, metadata-only topics are included as well.
func (h *handlers) listTopics(c *gin.Context) {
	topics := h.idx.AvailableTopics()
	if c.Query("all") == "true" {
		topics = h.idx.AllTopics()
	}
	c.JSON(http.StatusOK, TopicsResponse{Topics: topics, Total: len(topics)})
}

// searchTopics returns slugs matching the q parameter.
func (h *handlers) searchTopics(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter is required"})
		return
	}
	matches := h.idx.SearchTopics(query)
	if matches == nil {
		matches = []string{}
	}
	c.JSON(http.StatusOK, TopicSearchResponse{Query: query, Matches: matches})
}

// validateTopics resolves free-text topic references to canonical slugs.
func (h *handlers) validateTopics(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	c.JSON(http.StatusOK, ValidateResponse{Topics: h.idx.ValidateTopics(req.Topics)})
}

// listCourses returns the courses of the comma-separated topics parameter.
// Topic references are validated first, so aliases and typos work here too.
// Deduplication across topics is on unless ?dedupe=false.
func (h *handlers) listCourses(c *gin.Context) {
	raw := c.Query("topics")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topics parameter is required"})
		return
	}
	slugs := h.idx.ValidateTopics(strings.Split(raw, ","))
	if len(slugs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No matching topics"})
		return
	}

	dedupe := c.DefaultQuery("dedupe", "true") != "false"
	courses, err := h.repo.LoadMultipleTopics(slugs, h.idx, dedupe)
	if err != nil {
		h.log.Error("Failed to load courses", "topics", slugs, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
		return
	}
	c.JSON(http.StatusOK, CoursesResponse{Courses: courses, Total: len(courses)})
}

// searchCourse finds the best course match for the name parameter.
func (h *handlers) searchCourse(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name parameter is required"})
		return
	}

	course, score, ok := h.repo.SearchCourseByName(name, nil, h.idx)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No matching course"})
		return
	}

	url := course.URL
	if url == "" {
		url = repository.GenerateCourseURL(course.Title)
	}
	c.JSON(http.StatusOK, CourseMatchResponse{
		Query:  name,
		Course: course,
		Score:  score,
		URL:    url,
	})
}

// clearCache drops the course cache and resets the topic index so the next
// request picks up new CSV files.
func (h *handlers) clearCache(c *gin.Context) {
	h.repo.ClearCache()
	h.idx.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
}

// stats reports index size and cache occupancy.
func (h *handlers) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"topics":              h.idx.Len(),
		"topics_with_courses": len(h.idx.AvailableSlugs()),
		"cache":               h.repo.CacheStats(),
	})
}
