package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenhq/lumen/server/quiz"
)

type todayQuizResponse struct {
	Questions []quiz.QuestionItem `json:"questions"`
}

// getTodayQuiz returns today's quiz. The order is deterministic for the
// calendar day, so a mid-quiz page reload sees the same sequence.
func (s *APIV1Service) getTodayQuiz(c echo.Context) error {
	ctx := c.Request().Context()

	questions, err := s.Selector.TodayQuestions(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build today's quiz")
	}
	return c.JSON(http.StatusOK, todayQuizResponse{Questions: questions})
}

type pendingQuizResponse struct {
	Pending bool `json:"pending"`
}

func (s *APIV1Service) getPendingQuiz(c echo.Context) error {
	ctx := c.Request().Context()

	pending, err := s.Selector.HasPending(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to check quiz state")
	}
	return c.JSON(http.StatusOK, pendingQuizResponse{Pending: pending})
}

func (s *APIV1Service) getStats(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := s.Stats.Collect(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to collect stats")
	}
	return c.JSON(http.StatusOK, summary)
}
