package handler

import (
	albumsdomain "journeys-app-go/internal/domain/albums"
	circlesdomain "journeys-app-go/internal/domain/circles"
	friendsdomain "journeys-app-go/internal/domain/friends"
	journalsdomain "journeys-app-go/internal/domain/journals"
	journeysdomain "journeys-app-go/internal/domain/journeys"
	memoriesdomain "journeys-app-go/internal/domain/memories"
	plansdomain "journeys-app-go/internal/domain/plans"
	"journeys-app-go/pkg/logger"
)

type Handlers struct {
	Albums   *albumsdomain.Service
	Plans    *plansdomain.Service
	Journeys *journeysdomain.Service
	Circles  *circlesdomain.Service
	Journals *journalsdomain.Service
	Memories *memoriesdomain.Service
	Friends  *friendsdomain.Service

	log logger.Logger
}

func New(
	albums *albumsdomain.Service,
	plans *plansdomain.Service,
	journeys *journeysdomain.Service,
	circles *circlesdomain.Service,
	journals *journalsdomain.Service,
	memories *memoriesdomain.Service,
	friends *friendsdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Albums:   albums,
		Plans:    plans,
		Journeys: journeys,
		Circles:  circles,
		Journals: journals,
		Memories: memories,
		Friends:  friends,
		log:      log,
	}
}
