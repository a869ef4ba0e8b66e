package v1

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/internal/progress"
	"github.com/lumenhq/lumen/store"
)

func (s *APIV1Service) getDocRatings(c echo.Context) error {
	ctx := c.Request().Context()

	ratings, err := s.Store.GetDocRatings(ctx, c.Param("docKey"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load ratings")
	}
	return c.JSON(http.StatusOK, ratings)
}

type setRatingsRequest struct {
	// Ratings replaces the document's entire rating map; omitting a
	// question id un-rates it.
	Ratings progress.RecallRatings `json:"ratings"`
	// QuestionCount is the size of the document's question set, needed to
	// re-derive mastery.
	QuestionCount int `json:"questionCount"`
}

type setRatingsResponse struct {
	Ratings progress.RecallRatings `json:"ratings"`
	Mastery *store.MasteryEntry    `json:"mastery,omitempty"`
}

// setDocRatings replaces one document's recall ratings, re-derives its
// mastery flag and counts the rating as study activity.
func (s *APIV1Service) setDocRatings(c echo.Context) error {
	ctx := c.Request().Context()
	docKey := c.Param("docKey")

	var req setRatingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	for id, rating := range req.Ratings {
		if !rating.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("invalid rating %q for question %d", rating, id))
		}
	}

	if err := s.Store.SetDocRatings(ctx, docKey, req.Ratings); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save ratings")
	}
	mastery, err := s.Store.RecomputeMastery(ctx, docKey, req.QuestionCount)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to recompute mastery")
	}
	if _, err := s.Store.RecordActivity(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record activity")
	}

	return c.JSON(http.StatusOK, setRatingsResponse{
		Ratings: req.Ratings,
		Mastery: mastery,
	})
}

func (s *APIV1Service) getMastery(c echo.Context) error {
	ctx := c.Request().Context()

	all, err := s.Store.GetMastery(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load mastery")
	}
	return c.JSON(http.StatusOK, all)
}

func (s *APIV1Service) getDocMastery(c echo.Context) error {
	ctx := c.Request().Context()

	all, err := s.Store.GetMastery(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load mastery")
	}
	// Unknown documents read as not mastered.
	return c.JSON(http.StatusOK, all[c.Param("docKey")])
}

type streakResponse struct {
	progress.StreakState
	// Active is the display rule: a streak only counts when its last
	// activity is today.
	Active bool `json:"active"`
}

func (s *APIV1Service) getStreak(c echo.Context) error {
	ctx := c.Request().Context()

	state, err := s.Store.GetStreak(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load streak")
	}
	return c.JSON(http.StatusOK, streakResponse{
		StreakState: state,
		Active:      state.IsActive(dateutil.Today(dateutil.SystemClock{})),
	})
}

func (s *APIV1Service) recordActivity(c echo.Context) error {
	ctx := c.Request().Context()

	state, err := s.Store.RecordActivity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record activity")
	}
	return c.JSON(http.StatusOK, streakResponse{
		StreakState: state,
		Active:      state.IsActive(dateutil.Today(dateutil.SystemClock{})),
	})
}

type addTakeawayRequest struct {
	DocKey   string `json:"docKey"`
	DocName  string `json:"docName"`
	Takeaway string `json:"takeaway"`
}

// addTakeaway upserts the takeaway for a document (one live entry per
// docKey).
func (s *APIV1Service) addTakeaway(c echo.Context) error {
	ctx := c.Request().Context()

	var req addTakeawayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.DocKey == "" || req.Takeaway == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "docKey and takeaway are required")
	}

	entry, err := s.Store.AddTakeaway(ctx, req.DocKey, req.DocName, req.Takeaway)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save takeaway")
	}
	return c.JSON(http.StatusOK, entry)
}

func (s *APIV1Service) getTakeaway(c echo.Context) error {
	ctx := c.Request().Context()

	entry, err := s.Store.TakeawayForDoc(ctx, c.Param("docKey"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load takeaway")
	}
	if entry == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no takeaway for document")
	}
	return c.JSON(http.StatusOK, entry)
}
