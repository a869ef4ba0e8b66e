// Package v1 exposes the study-progress store, the daily quiz and the chat
// collaborator to the web UI as a JSON API.
package v1

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/lumenhq/lumen/internal/profile"
	"github.com/lumenhq/lumen/server/ai"
	"github.com/lumenhq/lumen/server/quiz"
	"github.com/lumenhq/lumen/server/stats"
	"github.com/lumenhq/lumen/store"
)

// ChatCompleter performs one chat completion. *ai.Provider implements it;
// it is nil when no model credential is configured.
type ChatCompleter interface {
	Chat(ctx context.Context, messages []ai.Message) (string, error)
}

type APIV1Service struct {
	Profile   *profile.Profile
	Store     *store.Store
	Selector  *quiz.Selector
	Retriever *ai.Retriever
	LLM       ChatCompleter
	Stats     *stats.Collector
}

func NewAPIV1Service(profile *profile.Profile, st *store.Store) *APIV1Service {
	selector := quiz.NewSelector(st)
	service := &APIV1Service{
		Profile:  profile,
		Store:    st,
		Selector: selector,
		Stats:    stats.NewCollector(st, selector),
	}

	provider, err := ai.NewProvider(ai.NewConfigFromProfile(profile))
	if err != nil {
		slog.Warn("AI provider unavailable, chat will be disabled", "error", err)
		service.Retriever = ai.NewRetriever(nil)
		return service
	}
	// The retriever always exists; with a disabled provider it degrades to
	// truncation instead of failing the chat flow.
	service.Retriever = ai.NewRetriever(provider)
	if provider.IsEnabled() {
		service.LLM = provider
	}
	return service
}

// Register mounts all API routes on the echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.POST("/documents", s.createDocument)
	g.GET("/documents/last", s.getLastDocument)
	g.GET("/documents/:docKey/ratings", s.getDocRatings)
	g.PUT("/documents/:docKey/ratings", s.setDocRatings)
	g.GET("/documents/:docKey/mastery", s.getDocMastery)
	g.GET("/mastery", s.getMastery)

	g.GET("/streak", s.getStreak)
	g.POST("/streak/activity", s.recordActivity)

	g.GET("/quiz/today", s.getTodayQuiz)
	g.GET("/quiz/pending", s.getPendingQuiz)

	g.GET("/takeaways/:docKey", s.getTakeaway)
	g.POST("/takeaways", s.addTakeaway)

	g.GET("/studylog", s.getStudyLog)
	g.GET("/stats", s.getStats)

	g.POST("/chat", s.chat)
}
