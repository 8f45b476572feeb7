package handlers

import (
	"net/http"

	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the unified search across landlords, tenants, properties and contracts
type SearchHandler struct {
	service service.SearchServiceInterface
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service service.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchResponse is the unified search result list
type SearchResponse struct {
	Data []service.SearchResult `json:"data"`
}

// Search handles GET /api/v1/search
// @Summary Unified search
// @Description Search landlords, tenants, properties and contracts of the caller's scope. Results are grouped by kind and ranked by relevance inside each group.
// @Tags search
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} SearchResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.service.Search(c.Request.Context(), auth.GetScope(c), c.Query("q"))
	if err != nil {
		respondError(c, err, "search failed")
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Data: results})
}
