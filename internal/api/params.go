package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"adept_play/internal/middleware" // Context accessors

	"github.com/gin-gonic/gin" // Gin web framework
)

const maxPageSize = 100 // Upper bound on page_size

// pathID parses the :id path parameter, writing 400 when it is not a positive integer
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// callerID returns the authenticated account ID, writing 401 when absent
func callerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return id, true
}

// paginate renders items under key. Without page parameters everything is returned;
// with them the slice is cut the way the listing endpoints always have been
func paginate[T any](c *gin.Context, key string, items []T) {
	total := len(items)
	if c.Query("page") == "" && c.Query("page_size") == "" {
		c.JSON(http.StatusOK, gin.H{key: items, "total": total})
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1")) // Default page number
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20")) // Default page size
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size"})
		return
	}
	start := total // Past the end yields an empty page
	if page-1 <= total/pageSize {
		start = (page - 1) * pageSize // Offset of the first item, cannot overflow here
	}
	if start > total {
		start = total
	}
	end := start + pageSize // One past the last item
	if end > total {
		end = total
	}
	totalPages := (total + pageSize - 1) / pageSize // Ceiling division
	c.JSON(http.StatusOK, gin.H{
		key:           items[start:end], // Current page
		"total":       total,            // Total items
		"page":        page,             // Current page
		"page_size":   pageSize,         // Page size
		"total_pages": totalPages,       // Total pages
	})
}
