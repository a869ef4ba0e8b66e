package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/server/internal/observability"
	"github.com/lumenhq/lumen/store"
)

type createDocumentRequest struct {
	DocName    string           `json:"docName"`
	TextLength int              `json:"textLength"`
	Summary    string           `json:"summary"`
	KeyPoints  []store.KeyPoint `json:"keyPoints"`
	Questions  []store.Question `json:"questions"`
}

type createDocumentResponse struct {
	DocKey   string                `json:"docKey"`
	Snapshot store.LastDocSnapshot `json:"snapshot"`
}

// createDocument records a completed analysis: it becomes the last-doc
// snapshot, today's study log gains the document, and the streak advances.
func (s *APIV1Service) createDocument(c echo.Context) error {
	ctx := c.Request().Context()

	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.DocName == "" || req.TextLength <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "docName and textLength are required")
	}
	if len(req.Questions) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "analysis must contain questions")
	}

	snapshot := store.LastDocSnapshot{
		DocKey:    store.DocKey(req.DocName, req.TextLength),
		DocName:   req.DocName,
		Questions: req.Questions,
		KeyPoints: req.KeyPoints,
	}
	if err := s.Store.SetLastDoc(ctx, &snapshot); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save document snapshot")
	}
	if err := s.Store.RecordStudied(ctx, snapshot.DocKey, snapshot.DocName, snapshot.Questions); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record study log")
	}
	if _, err := s.Store.RecordActivity(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record activity")
	}

	observability.Log(ctx).Info("document analyzed",
		"doc_key", snapshot.DocKey,
		"questions", len(snapshot.Questions))

	return c.JSON(http.StatusOK, createDocumentResponse{
		DocKey:   snapshot.DocKey,
		Snapshot: snapshot,
	})
}

func (s *APIV1Service) getLastDocument(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := s.Store.GetLastDoc(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load last document")
	}
	if snapshot == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no document analyzed yet")
	}
	return c.JSON(http.StatusOK, snapshot)
}

type studyLogResponse struct {
	Date    string                  `json:"date"`
	Entries []store.StudiedDocEntry `json:"entries"`
}

// getStudyLog returns the documents studied on one day (default today).
func (s *APIV1Service) getStudyLog(c echo.Context) error {
	ctx := c.Request().Context()

	date := c.QueryParam("date")
	if date == "" {
		date = dateutil.Today(dateutil.SystemClock{})
	} else if !dateutil.IsValidDay(date) {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	entries, err := s.Store.StudiedDocsForDate(ctx, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load study log")
	}
	if entries == nil {
		entries = []store.StudiedDocEntry{}
	}
	return c.JSON(http.StatusOK, studyLogResponse{Date: date, Entries: entries})
}
