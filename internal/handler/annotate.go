package handler

import (
	"net/http"
	"strings"

	"headline-lens/internal/domain"

	"github.com/gin-gonic/gin"
)

type annotateRequest struct {
	Text           string `json:"text" binding:"required"`
	RelatedSymbols string `json:"related_symbols"`
	Category       string `json:"category"`
}

// AnnotateNews godoc
// @Summary      Annotate a single headline
// @Description  Runs the deterministic pipeline over one headline and returns instrument matches, relevance, topic, impact, and highlight segments
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        request  body  annotateRequest  true  "Headline to annotate"
// @Success      200  {object}  domain.AnnotatedHeadline
// @Failure      400  {object}  map[string]string
// @Router       /api/news/annotate [post]
func (h *Handler) AnnotateNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.annotate-news")
	defer span.End()

	var req annotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	annotated := h.feedService.AnnotateHeadline(ctx, domain.Headline{
		Text:           req.Text,
		RelatedSymbols: req.RelatedSymbols,
		Category:       req.Category,
	})

	c.JSON(http.StatusOK, annotated)
}
