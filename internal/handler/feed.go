package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetNews godoc
// @Summary      Get recent annotated headlines
// @Description  Returns the newest stored headlines with instrument matches, relevance, topic, impact, and highlight segments
// @Tags         news
// @Produce      json
// @Param        markets_only  query  bool  false  "Only return headlines classified as market-relevant"  default(false)
// @Param        limit         query  int   false  "Number of headlines (default 50, max 200)"  default(50)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-news")
	defer span.End()

	marketsOnly := c.Query("markets_only") == "true"
	span.SetAttributes(attribute.Bool("markets_only", marketsOnly))

	limit := 0
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	headlines, err := h.feedService.Feed(ctx, marketsOnly, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"headlines": headlines, "count": len(headlines)})
}
