package sequencing

import (
	"context"
	"fmt"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

const (
	SourceLocal  = "local"
	SourceServer = "server"
	SourceNone   = "none"
)

type Engine struct {
	stops        StopService
	settings     SettingsRepository
	location     LocationProvider
	sectors      SectorRepository
	optimizer    RemoteOptimizer
	connectivity Connectivity
	log          handlerLogger
}

func New(
	stops StopService,
	settings SettingsRepository,
	location LocationProvider,
	sectors SectorRepository,
	optimizer RemoteOptimizer,
	connectivity Connectivity,
	log handlerLogger,
) *Engine {
	return &Engine{
		stops:        stops,
		settings:     settings,
		location:     location,
		sectors:      sectors,
		optimizer:    optimizer,
		connectivity: connectivity,
		log:          log,
	}
}

// Sequence reorders the open stops of the active itinerary with the requested
// strategy. Terminal stops keep their relative order ahead of the open ones.
func (e *Engine) Sequence(ctx context.Context, req entities.SequenceRequest) (*entities.SequenceResult, error) {
	switch req.Strategy {
	case entities.StrategyNearestNeighbor, entities.StrategyStreetGrouping, entities.StrategySectors:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, req.Strategy)
	}

	stops := e.stops.ListStops(ctx)
	done, open := splitTerminal(stops)
	if len(open) < 2 {
		return &entities.SequenceResult{Strategy: req.Strategy, Source: SourceNone, Stops: stops}, nil
	}

	var ordered []entities.Stop
	switch req.Strategy {
	case entities.StrategyNearestNeighbor:
		start := e.resolveStart(ctx, req.Start)
		if req.PreferServer && e.connectivity.IsOnline() {
			if result, ok := e.sequenceOnServer(ctx, req.Strategy, start); ok {
				return result, nil
			}
		}
		if start == nil {
			first := open[0].Coordinates()
			start = &first
		}
		ordered = nearestNeighbor(*start, open)
	case entities.StrategyStreetGrouping:
		ordered = streetGrouping(e.resolveStart(ctx, req.Start), open)
	case entities.StrategySectors:
		sectors, err := e.sectors.Sectors(ctx)
		if err != nil {
			return nil, fmt.Errorf("sequence: %w", err)
		}
		ordered = sectorGrouping(sectors, open)
	}

	ids := make([]string, 0, len(stops))
	for _, stop := range done {
		ids = append(ids, stop.ID)
	}
	for _, stop := range ordered {
		ids = append(ids, stop.ID)
	}

	result, err := e.stops.Reorder(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("sequence: %w", err)
	}
	return &entities.SequenceResult{Strategy: req.Strategy, Source: SourceLocal, Stops: result}, nil
}

func (e *Engine) sequenceOnServer(
	ctx context.Context,
	strategy entities.SequencingStrategy,
	start *entities.Coordinates,
) (*entities.SequenceResult, bool) {
	remote, err := e.optimizer.Optimize(ctx, start)
	if err != nil {
		e.log.Warn("server optimization failed, sequencing locally", logger.NewField("error", err))
		return nil, false
	}

	adopted, err := e.stops.AdoptOrder(ctx, remote)
	if err != nil {
		e.log.Warn("adopt server order", logger.NewField("error", err))
		return nil, false
	}
	return &entities.SequenceResult{Strategy: strategy, Source: SourceServer, Stops: adopted}, true
}

// resolveStart picks the explicit start, then the configured one, then a fresh
// device fix, then the last-known location. It returns nil when none exists.
func (e *Engine) resolveStart(ctx context.Context, explicit *entities.Coordinates) *entities.Coordinates {
	if explicit != nil {
		return explicit
	}

	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		e.log.Warn("read settings for start point", logger.NewField("error", err))
	} else if settings.StartLocation != nil {
		return settings.StartLocation
	}

	if fresh, err := e.location.Fresh(ctx); err == nil {
		return &fresh.Coordinates
	}
	if last, err := e.location.Last(ctx); err == nil {
		e.log.Info("using last-known location as start")
		return &last.Coordinates
	}
	return nil
}

func splitTerminal(stops []entities.Stop) (done, open []entities.Stop) {
	for _, stop := range stops {
		if stop.Status.IsTerminal() {
			done = append(done, stop)
		} else {
			open = append(open, stop)
		}
	}
	return done, open
}
