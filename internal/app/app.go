package app

import (
	"context"
	"net/http"

	deliveryGateway "courier-sync/internal/gateway/http/delivery"
	connectivity_put "courier-sync/internal/handlers/rest/connectivity_put"
	itinerary_finalize_post "courier-sync/internal/handlers/rest/itinerary_finalize_post"
	itinerary_get "courier-sync/internal/handlers/rest/itinerary_get"
	itinerary_post "courier-sync/internal/handlers/rest/itinerary_post"
	location_put "courier-sync/internal/handlers/rest/location_put"
	offline_cities_get "courier-sync/internal/handlers/rest/offline_cities_get"
	offline_city_post "courier-sync/internal/handlers/rest/offline_city_post"
	sector_delete "courier-sync/internal/handlers/rest/sector_delete"
	sector_post "courier-sync/internal/handlers/rest/sector_post"
	sectors_get "courier-sync/internal/handlers/rest/sectors_get"
	session_put "courier-sync/internal/handlers/rest/session_put"
	settings_get "courier-sync/internal/handlers/rest/settings_get"
	settings_put "courier-sync/internal/handlers/rest/settings_put"
	stop_delete "courier-sync/internal/handlers/rest/stop_delete"
	stop_packages_post "courier-sync/internal/handlers/rest/stop_packages_post"
	stop_patch "courier-sync/internal/handlers/rest/stop_patch"
	stop_post "courier-sync/internal/handlers/rest/stop_post"
	stop_set_current_post "courier-sync/internal/handlers/rest/stop_set_current_post"
	stop_status_patch "courier-sync/internal/handlers/rest/stop_status_patch"
	stops_get "courier-sync/internal/handlers/rest/stops_get"
	stops_sequence_post "courier-sync/internal/handlers/rest/stops_sequence_post"
	sync_drain_post "courier-sync/internal/handlers/rest/sync_drain_post"
	sync_status_get "courier-sync/internal/handlers/rest/sync_status_get"
	tile_get "courier-sync/internal/handlers/rest/tile_get"
	tile_put "courier-sync/internal/handlers/rest/tile_put"
	"courier-sync/internal/handlers/tasks/cache_cleanup"
	"courier-sync/internal/handlers/tasks/queue_drain"
	"courier-sync/internal/pkg/config"
	"courier-sync/internal/pkg/events"
	"courier-sync/internal/pkg/factory/earnings"
	"courier-sync/internal/pkg/factory/sync_request"
	cacheRepo "courier-sync/internal/repository/cache"
	itineraryRepo "courier-sync/internal/repository/itinerary"
	settingsRepo "courier-sync/internal/repository/settings"
	stopRepo "courier-sync/internal/repository/stop"
	syncqueueRepo "courier-sync/internal/repository/syncqueue"
	tilesRepo "courier-sync/internal/repository/tiles"
	connectivityService "courier-sync/internal/service/connectivity"
	itineraryService "courier-sync/internal/service/itinerary"
	locationService "courier-sync/internal/service/location"
	offlineService "courier-sync/internal/service/offline"
	sequencingService "courier-sync/internal/service/sequencing"
	stopService "courier-sync/internal/service/stop"
	syncqueueService "courier-sync/internal/service/syncqueue"
	"courier-sync/internal/store"

	"courier-sync/pkg/background"
	"courier-sync/pkg/logger"
)

type Application struct {
	ServiceStops        ServiceStops
	ServiceSequencing   ServiceSequencing
	ServiceItinerary    ServiceItinerary
	ServiceSync         ServiceSync
	ServiceConnectivity ServiceConnectivity
	ServiceLocation     ServiceLocation
	ServiceSettings     ServiceSettings
	ServiceOffline      ServiceOffline
	Events              *events.Hub
	BackgroundWorkers   *background.Worker
}

type ServiceStops interface {
	stops_get.Service
	stop_post.Service
	stop_patch.Service
	stop_status_patch.Service
	stop_delete.Service
	stop_set_current_post.Service
	stop_packages_post.Service
}

type ServiceSequencing interface {
	stops_sequence_post.Service
	sectors_get.Service
	sector_post.Service
	sector_delete.Service
}

type ServiceItinerary interface {
	itinerary_get.Service
	itinerary_post.Service
	itinerary_finalize_post.Service
}

type ServiceSync interface {
	sync_status_get.Queue
	sync_drain_post.Queue
}

type ServiceConnectivity interface {
	sync_status_get.Connectivity
	connectivity_put.Connectivity
}

type ServiceLocation interface {
	location_put.Tracker
}

type ServiceSettings interface {
	settings_get.Service
	settings_put.Service
	session_put.Service
}

type ServiceOffline interface {
	tile_get.Service
	tile_put.Service
	offline_cities_get.Service
	offline_city_post.Service
}

func provideRemoteConfig(cfg *config.Config) *config.Remote {
	return &cfg.Remote
}

func provideEventHub(log logger.Logger) *events.Hub {
	return events.NewHub(log.With(logger.NewField("component", "events")))
}

// The gateway bounds every call with its own context timeout.
func provideHTTPClient() *http.Client {
	return &http.Client{}
}

func provideStopRepository(st *store.Store) *stopRepo.Repository {
	return stopRepo.New(st)
}

func provideItineraryRepository(st *store.Store) *itineraryRepo.Repository {
	return itineraryRepo.New(st)
}

func provideSettingsRepository(st *store.Store) *settingsRepo.Repository {
	return settingsRepo.New(st)
}

func provideSyncQueueRepository(st *store.Store) *syncqueueRepo.Repository {
	return syncqueueRepo.New(st)
}

func provideTilesRepository(st *store.Store) *tilesRepo.Repository {
	return tilesRepo.New(st)
}

func provideCacheRepository(st *store.Store) *cacheRepo.Repository {
	return cacheRepo.New(st)
}

func provideDeliveryGateway(
	cfg *config.Remote,
	client *http.Client,
	session deliveryGateway.SessionProvider,
) *deliveryGateway.DeliveryGateway {
	return deliveryGateway.New(cfg, client, session)
}

func provideConnectivityMonitor(
	log logger.Logger,
	gateway *deliveryGateway.DeliveryGateway,
	hub *events.Hub,
	cfg *config.Config,
) *connectivityService.Monitor {
	return connectivityService.New(
		gateway,
		hub,
		log.With(logger.NewField("component", "connectivity")),
		cfg.Tasks.ConnectivityProbeInterval,
	)
}

func provideSyncQueue(
	log logger.Logger,
	repository *syncqueueRepo.Repository,
	gateway *deliveryGateway.DeliveryGateway,
	monitor *connectivityService.Monitor,
	hub *events.Hub,
	cfg *config.Config,
) *syncqueueService.Queue {
	return syncqueueService.New(
		repository,
		gateway,
		monitor,
		hub,
		log.With(logger.NewField("component", "sync_queue")),
		cfg.Sync.MaxRetries,
	)
}

func provideStopController(
	log logger.Logger,
	st *store.Store,
	repository *stopRepo.Repository,
	itineraries *itineraryRepo.Repository,
	queue *syncqueueService.Queue,
	requests *sync_request.RequestFactory,
	gateway *deliveryGateway.DeliveryGateway,
	hub *events.Hub,
) *stopService.Controller {
	return stopService.New(
		repository,
		itineraries,
		queue,
		requests,
		gateway,
		hub,
		st,
		log.With(logger.NewField("component", "stops")),
	)
}

func provideItineraryService(
	st *store.Store,
	repository *itineraryRepo.Repository,
	stops *stopRepo.Repository,
	settings *settingsRepo.Repository,
	earningsFactory *earnings.EarningsFactory,
	requests *sync_request.RequestFactory,
	queue *syncqueueService.Queue,
) *itineraryService.Itinerary {
	return itineraryService.New(repository, stops, settings, earningsFactory, requests, queue, st)
}

func provideLocationTracker(
	log logger.Logger,
	cache *cacheRepo.Repository,
	cfg *config.Config,
) *locationService.Tracker {
	return locationService.New(
		cache,
		log.With(logger.NewField("component", "location")),
		cfg.Sequencing.LocationMaxAge,
		cfg.Sequencing.LocationTimeout,
	)
}

func provideSequencingEngine(
	log logger.Logger,
	stops *stopService.Controller,
	settings *settingsRepo.Repository,
	tracker *locationService.Tracker,
	cache *cacheRepo.Repository,
	gateway *deliveryGateway.DeliveryGateway,
	monitor *connectivityService.Monitor,
) *sequencingService.Engine {
	return sequencingService.New(
		stops,
		settings,
		tracker,
		cache,
		gateway,
		monitor,
		log.With(logger.NewField("component", "sequencing")),
	)
}

func provideOfflineService(tiles *tilesRepo.Repository) *offlineService.Service {
	return offlineService.New(tiles, tiles)
}

func provideCacheCleanupTask(
	log logger.Logger,
	cache *cacheRepo.Repository,
	cfg *config.Config,
) *cache_cleanup.CacheCleanup {
	return cache_cleanup.NewCacheCleanup(log, cache, cfg.Tasks.CacheCleanupInterval)
}

// provideQueueDrainTask also subscribes the drain to reconnects, so it must run before
// the monitor's first probe.
func provideQueueDrainTask(
	log logger.Logger,
	queue *syncqueueService.Queue,
	stops *stopService.Controller,
	monitor *connectivityService.Monitor,
	cfg *config.Config,
) *queue_drain.QueueDrain {
	task := queue_drain.NewQueueDrain(
		log.With(logger.NewField("component", "queue_drain")),
		queue,
		stops,
		monitor,
		cfg.Tasks.SyncDrainInterval,
	)
	monitor.Subscribe(task.OnReconnect)
	return task
}

func provideTaskList(
	monitor *connectivityService.Monitor,
	queueDrainTask *queue_drain.QueueDrain,
	cacheCleanupTask *cache_cleanup.CacheCleanup,
) []background.Task {
	return []background.Task{
		monitor,
		queueDrainTask,
		cacheCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
