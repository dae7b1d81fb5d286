package httpserver

import (
	"net/http"
	"time"

	"journeys-app-go/internal/config"
	"journeys-app-go/internal/transport/httpserver/handler"
	corsmw "journeys-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/albums", handlers.ListAlbums)
		r.Post("/albums", handlers.CreateAlbum)
		r.Get("/albums/{album_id}", handlers.GetAlbum)
		r.Put("/albums/{album_id}", handlers.UpdateAlbum)
		r.Delete("/albums/{album_id}", handlers.DeleteAlbum)

		r.Get("/albums/{album_id}/photos", handlers.ListPhotos)
		r.Post("/albums/{album_id}/photos", handlers.CreatePhoto)
		r.Put("/albums/{album_id}/photos/{photo_id}", handlers.UpdatePhoto)
		r.Delete("/albums/{album_id}/photos/{photo_id}", handlers.DeletePhoto)

		r.Get("/albums/{album_id}/pages", handlers.ListPages)
		r.Post("/albums/{album_id}/pages", handlers.UpsertPageByBody)
		r.Put("/albums/{album_id}/pages/{page_number}", handlers.UpsertPage)

		r.Get("/users/{user_id}/plans", handlers.ListPlans)
		r.Post("/plans", handlers.CreatePlan)
		r.Put("/plans/{plan_id}", handlers.UpdatePlan)
		r.Delete("/plans/{plan_id}", handlers.DeletePlan)

		r.Get("/journeys", handlers.ListJourneyFeed)
		r.Post("/journeys", handlers.CreateJourney)
		r.Get("/journeys/{journey_id}", handlers.GetJourney)
		r.Put("/journeys/{journey_id}", handlers.UpdateJourney)
		r.Delete("/journeys/{journey_id}", handlers.DeleteJourney)
		r.Post("/journeys/{journey_id}/like", handlers.LikeJourney)
		r.Get("/users/{user_id}/journeys", handlers.ListUserJourneys)

		r.Get("/memory-circles", handlers.ListCircles)
		r.Post("/memory-circles", handlers.CreateCircle)
		r.Get("/memory-circles/{circle_id}", handlers.GetCircle)
		r.Post("/memory-circles/{circle_id}/members", handlers.AddCircleMember)
		r.Post("/memory-circles/{circle_id}/journeys", handlers.ShareCircleJourney)

		r.Get("/collaborative-journals", handlers.ListJournals)
		r.Post("/collaborative-journals", handlers.CreateJournal)
		r.Post("/collaborative-journals/entries", handlers.AddJournalEntry)
		r.Get("/collaborative-journals/{journal_id}", handlers.GetJournal)
		r.Get("/collaborative-journals/{journal_id}/entries", handlers.ListJournalEntries)
		r.Post("/collaborative-journals/{journal_id}/members", handlers.AddJournalMember)

		r.Get("/anonymous-memories", handlers.ListMemories)
		r.Post("/anonymous-memories", handlers.CreateMemory)
		r.Post("/memory-exchanges", handlers.CreateExchange)
		r.Get("/memory-exchanges/{user_id}", handlers.ListExchanges)

		r.Get("/friends", handlers.ListFriends)
		r.Post("/friends", handlers.AddFriend)
		r.Delete("/friends/{friend_id}", handlers.RemoveFriend)
	})

	return r
}
