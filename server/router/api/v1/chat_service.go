package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lumenhq/lumen/server/ai"
	"github.com/lumenhq/lumen/server/internal/observability"
)

type chatRequest struct {
	DocName string `json:"docName"`
	// Document is the extracted plain text of the document under study.
	Document string `json:"document"`
	Query    string `json:"query"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	// Truncated reports that the document context was cut off instead of
	// retrieved (no embedding credential configured).
	Truncated bool `json:"truncated"`
}

// chat answers one question about the document. For long documents the
// retriever supplies only the most relevant excerpts as context.
func (s *APIV1Service) chat(c echo.Context) error {
	ctx := c.Request().Context()

	if s.LLM == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat model is not configured")
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	excerpt := s.Retriever.RelevantChunks(ctx, req.Document, req.Query, ai.ContextCharLimit)
	truncated := strings.HasSuffix(excerpt, ai.TruncationMarker)

	messages := []ai.Message{
		{
			Role: "system",
			Content: "You are a study assistant. Answer using only the document excerpts below.\n\n" +
				"Document: " + req.DocName + "\n\n" + excerpt,
		},
		{Role: "user", Content: req.Query},
	}
	reply, err := s.LLM.Chat(ctx, messages)
	if err != nil {
		observability.Log(ctx).Error("chat completion failed", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "chat completion failed")
	}

	return c.JSON(http.StatusOK, chatResponse{Reply: reply, Truncated: truncated})
}
