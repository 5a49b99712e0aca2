//go:build wireinject
// +build wireinject

package app

import (
	"context"

	deliveryGateway "courier-sync/internal/gateway/http/delivery"
	"courier-sync/internal/pkg/config"
	"courier-sync/internal/pkg/factory/earnings"
	"courier-sync/internal/pkg/factory/sync_request"
	settingsRepo "courier-sync/internal/repository/settings"
	connectivityService "courier-sync/internal/service/connectivity"
	itineraryService "courier-sync/internal/service/itinerary"
	locationService "courier-sync/internal/service/location"
	offlineService "courier-sync/internal/service/offline"
	sequencingService "courier-sync/internal/service/sequencing"
	settingsService "courier-sync/internal/service/settings"
	stopService "courier-sync/internal/service/stop"
	syncqueueService "courier-sync/internal/service/syncqueue"
	"courier-sync/internal/store"
	"courier-sync/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication wires the agent around an opened store.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	st *store.Store,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideRemoteConfig,
		provideHTTPClient,

		provideStopRepository,
		provideItineraryRepository,
		provideSettingsRepository,
		provideSyncQueueRepository,
		provideTilesRepository,
		provideCacheRepository,

		provideDeliveryGateway,
		provideEventHub,
		sync_request.New,
		earnings.New,

		provideConnectivityMonitor,
		provideSyncQueue,
		provideStopController,
		provideItineraryService,
		provideLocationTracker,
		provideSequencingEngine,
		settingsService.New,
		provideOfflineService,

		provideCacheCleanupTask,
		provideQueueDrainTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceStops), new(*stopService.Controller)),
		wire.Bind(new(ServiceSequencing), new(*sequencingService.Engine)),
		wire.Bind(new(ServiceItinerary), new(*itineraryService.Itinerary)),
		wire.Bind(new(ServiceSync), new(*syncqueueService.Queue)),
		wire.Bind(new(ServiceConnectivity), new(*connectivityService.Monitor)),
		wire.Bind(new(ServiceLocation), new(*locationService.Tracker)),
		wire.Bind(new(ServiceSettings), new(*settingsService.Service)),
		wire.Bind(new(ServiceOffline), new(*offlineService.Service)),

		wire.Bind(new(settingsService.Repository), new(*settingsRepo.Repository)),
		wire.Bind(new(deliveryGateway.SessionProvider), new(*settingsRepo.Repository)),
	)
	return &Application{}, nil
}

