package app

import (
	"net/http"

	"gorm.io/gorm"

	"journeys-app-go/internal/config"
	"journeys-app-go/internal/db"
	albumsdomain "journeys-app-go/internal/domain/albums"
	circlesdomain "journeys-app-go/internal/domain/circles"
	friendsdomain "journeys-app-go/internal/domain/friends"
	journalsdomain "journeys-app-go/internal/domain/journals"
	journeysdomain "journeys-app-go/internal/domain/journeys"
	memoriesdomain "journeys-app-go/internal/domain/memories"
	plansdomain "journeys-app-go/internal/domain/plans"
	albumsrepo "journeys-app-go/internal/repository/postgres/albums"
	circlesrepo "journeys-app-go/internal/repository/postgres/circles"
	friendsrepo "journeys-app-go/internal/repository/postgres/friends"
	journalsrepo "journeys-app-go/internal/repository/postgres/journals"
	journeysrepo "journeys-app-go/internal/repository/postgres/journeys"
	memoriesrepo "journeys-app-go/internal/repository/postgres/memories"
	plansrepo "journeys-app-go/internal/repository/postgres/plans"
	"journeys-app-go/internal/transport/httpserver"
	"journeys-app-go/internal/transport/httpserver/handler"
	"journeys-app-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.InitSchema(dbConn, cfg.DB.ResetPhotos); err != nil {
		return nil, err
	}
	log.Info("db: schema ready", "reset_photos", cfg.DB.ResetPhotos)

	handlers := handler.New(
		albumsdomain.NewService(albumsrepo.NewPostgres(dbConn)),
		plansdomain.NewService(plansrepo.NewPostgres(dbConn)),
		journeysdomain.NewService(journeysrepo.NewPostgres(dbConn)),
		circlesdomain.NewService(circlesrepo.NewPostgres(dbConn)),
		journalsdomain.NewService(journalsrepo.NewPostgres(dbConn)),
		memoriesdomain.NewService(memoriesrepo.NewPostgres(dbConn)),
		friendsdomain.NewService(friendsrepo.NewPostgres(dbConn)),
		log,
	)

	router := httpserver.NewRouter(cfg, handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
