package api

import (
	"net/http"
	"strconv"
	"strings"

	"reptrack/reptrack/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes search over the static exercise catalog.
type CatalogHandler struct {
	exercises []catalog.Exercise
}

func NewCatalogHandler(exercises []catalog.Exercise) *CatalogHandler {
	return &CatalogHandler{exercises: exercises}
}

type CatalogResultResponse struct {
	Exercise catalog.Exercise `json:"exercise"`
	Score    int              `json:"score"`
}

// SearchCatalog handles GET /catalog/search?q=...&limit=...&exclude=id1,id2.
// An empty query returns an empty list, not the whole catalog.
func (h *CatalogHandler) SearchCatalog(c *gin.Context) {
	opts := catalog.SearchOptions{}

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 1 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		opts.Limit = limit
	}
	if excludeParam := c.Query("exclude"); excludeParam != "" {
		opts.ExcludeIDs = strings.Split(excludeParam, ",")
	}

	results := catalog.Search(h.exercises, c.Query("q"), opts)

	responses := make([]CatalogResultResponse, len(results))
	for i, result := range results {
		responses[i] = CatalogResultResponse{Exercise: result.Exercise, Score: result.Score}
	}
	c.JSON(http.StatusOK, responses)
}
