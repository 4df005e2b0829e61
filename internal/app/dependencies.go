package app

import (
	"github.com/campcal/campcal/internal/config"
	"github.com/campcal/campcal/internal/health"
	"github.com/campcal/campcal/internal/utils"
	"github.com/campcal/campcal/pkg/calendar_sync"
	"github.com/campcal/campcal/pkg/event"
	"github.com/campcal/campcal/pkg/favorite"
	"github.com/campcal/campcal/pkg/filter"
	"github.com/campcal/campcal/pkg/google"
	"github.com/campcal/campcal/pkg/session"
	"github.com/campcal/campcal/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserService user.Service
	UserHandler *user.Handler

	SessionRepo session.Repository

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	EventRepo     event.Repo
	EventService  event.Service
	EventHandler  *event.Handler
	EventSeeder   *event.Seeder
	FilterHandler *filter.Handler

	FavoriteRepo    favorite.Repository
	FavoriteService *favorite.Service
	FavoriteHandler *favorite.Handler

	CalendarSyncRepo    calendar_sync.Repository
	CalendarSyncService *calendar_sync.Service
	CalendarSyncHandler *calendar_sync.Handler

	HealthHandler *health.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.SessionRepo = session.NewRepository(db)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, deps.SessionRepo, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.EventRepo = event.NewEventRepo(db)
	deps.EventService = event.NewEventService(deps.EventRepo)
	deps.EventHandler = event.NewHandler(deps.EventService)
	deps.EventSeeder = event.NewSeeder(deps.EventRepo)
	deps.FilterHandler = filter.NewHandler(deps.EventService)

	deps.FavoriteRepo = favorite.NewRepository(db)
	deps.FavoriteService = favorite.NewServiceWithClock(deps.FavoriteRepo, deps.Clock)
	deps.FavoriteHandler = favorite.NewHandler(deps.FavoriteService)

	deps.CalendarSyncRepo = calendar_sync.NewRepository(db)
	deps.CalendarSyncService = calendar_sync.NewServiceWithClock(deps.CalendarSyncRepo, deps.UserService, deps.FavoriteService, deps.Clock)
	deps.CalendarSyncHandler = calendar_sync.NewHandler(deps.CalendarSyncService)

	deps.HealthHandler = health.NewHandler(db)

	return deps
}
