package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Partition string

const (
	PartitionStops         Partition = "stops"
	PartitionItineraries   Partition = "itineraries"
	PartitionSyncQueue     Partition = "sync_queue"
	PartitionSettings      Partition = "settings"
	PartitionSession       Partition = "session"
	PartitionCache         Partition = "cache"
	PartitionTiles         Partition = "tiles"
	PartitionOfflineCities Partition = "offline_cities"
)

const (
	IndexByItinerary  = "by_itinerary"
	IndexByStatus     = "by_status"
	IndexBySyncStatus = "by_sync_status"
	IndexByTimestamp  = "by_timestamp"
	IndexByExpiry     = "by_expiry"
	IndexByZoom       = "by_zoom"
)

// LatestVersion is the highest schema version known to this build.
const LatestVersion = 2

func (p Partition) table() string {
	return "p_" + string(p)
}

type partitionDef struct {
	name Partition
	kind string
}

type indexDef struct {
	partition Partition
	name      string
	path      string
}

func (i indexDef) sqlName() string {
	return fmt.Sprintf("idx_%s_%s", i.partition.table(), i.name)
}

func (i indexDef) expr() string {
	return fmt.Sprintf("json_extract(data, '%s')", i.path)
}

type schemaStep struct {
	version    int64
	partitions []partitionDef
	indexes    []indexDef
}

// schemaSteps is append-only. Existing steps must never change.
var schemaSteps = []schemaStep{
	{
		version: 1,
		partitions: []partitionDef{
			{name: PartitionStops, kind: "stop"},
			{name: PartitionItineraries, kind: "itinerary"},
			{name: PartitionSyncQueue, kind: "sync_item"},
			{name: PartitionSettings, kind: "settings"},
			{name: PartitionSession, kind: "session"},
			{name: PartitionCache, kind: "cache_entry"},
			{name: PartitionTiles, kind: "map_tile"},
			{name: PartitionOfflineCities, kind: "offline_city"},
		},
		indexes: []indexDef{
			{partition: PartitionStops, name: IndexByItinerary, path: "$.itineraryId"},
			{partition: PartitionStops, name: IndexByStatus, path: "$.status"},
			{partition: PartitionStops, name: IndexBySyncStatus, path: "$.syncStatus"},
			{partition: PartitionItineraries, name: IndexByStatus, path: "$.status"},
			{partition: PartitionSyncQueue, name: IndexByTimestamp, path: "$.timestamp"},
		},
	},
	{
		version: 2,
		indexes: []indexDef{
			{partition: PartitionCache, name: IndexByExpiry, path: "$.expiresAt"},
			{partition: PartitionTiles, name: IndexByZoom, path: "$.zoom"},
		},
	},
}

// catalog describes the partitions and indexes available at one schema version.
type catalog struct {
	kinds   map[Partition]string
	indexes map[Partition]map[string]indexDef
}

func catalogAt(version int64) catalog {
	c := catalog{
		kinds:   make(map[Partition]string),
		indexes: make(map[Partition]map[string]indexDef),
	}
	for _, step := range schemaSteps {
		if step.version > version {
			break
		}
		for _, p := range step.partitions {
			c.kinds[p.name] = p.kind
		}
		for _, idx := range step.indexes {
			if c.indexes[idx.partition] == nil {
				c.indexes[idx.partition] = make(map[string]indexDef)
			}
			c.indexes[idx.partition][idx.name] = idx
		}
	}
	return c
}

func (c catalog) kind(p Partition) (string, error) {
	kind, ok := c.kinds[p]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPartition, p)
	}
	return kind, nil
}

func (c catalog) index(p Partition, name string) (indexDef, error) {
	if _, err := c.kind(p); err != nil {
		return indexDef{}, err
	}
	idx, ok := c.indexes[p][name]
	if !ok {
		return indexDef{}, fmt.Errorf("%w: %s.%s", ErrUnknownIndex, p, name)
	}
	return idx, nil
}

func (s schemaStep) apply(ctx context.Context, tx *sql.Tx) error {
	for _, p := range s.partitions {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			key        TEXT PRIMARY KEY,
			kind       TEXT NOT NULL,
			version    INTEGER NOT NULL,
			data       TEXT NOT NULL CHECK (json_valid(data)),
			updated_at INTEGER NOT NULL
		)`, p.name.table())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create partition %s: %w", p.name, err)
		}
	}
	for _, idx := range s.indexes {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.sqlName(), idx.partition.table(), idx.expr())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index %s: %w", idx.sqlName(), err)
		}
	}
	return nil
}
