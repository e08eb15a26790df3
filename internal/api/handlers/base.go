package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/election-sim-backend/internal/api/dto"
)

// WriteError writes a structured error response with the given status code.
func WriteError(c *gin.Context, status int, err dto.APIError) {
	c.JSON(status, err)
}

// ParseIntQuery parses an integer query parameter with a default value.
func ParseIntQuery(c *gin.Context, name string, defaultVal int) int {
	val := c.Query(name)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// ParseBoolQuery parses a boolean query parameter with a default value.
func ParseBoolQuery(c *gin.Context, name string, defaultVal bool) bool {
	val := c.Query(name)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}
