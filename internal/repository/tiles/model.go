package tiles

import (
	"errors"
	"time"

	"courier-sync/internal/entities"
)

const maxZoom = 22

type TileRecord struct {
	Zoom      int       `json:"zoom"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Data      []byte    `json:"data"`
	FetchedAt time.Time `json:"fetchedAt"`
}

func (r *TileRecord) Key() string        { return entities.TileKey(r.Zoom, r.X, r.Y) }
func (r *TileRecord) Kind() string       { return "map_tile" }
func (r *TileRecord) SchemaVersion() int { return 1 }

func (r *TileRecord) Validate() error {
	if r.Zoom < 0 || r.Zoom > maxZoom {
		return errors.New("zoom out of range")
	}
	limit := 1 << r.Zoom
	if r.X < 0 || r.Y < 0 || r.X >= limit || r.Y >= limit {
		return errors.New("tile coordinates out of range")
	}
	if len(r.Data) == 0 {
		return errors.New("tile data is empty")
	}
	return nil
}

type CityRecord struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Bounds       [][2]float64 `json:"bounds,omitempty"`
	MinZoom      int          `json:"minZoom"`
	MaxZoom      int          `json:"maxZoom"`
	TileCount    int          `json:"tileCount"`
	DownloadedAt time.Time    `json:"downloadedAt"`
}

func (r *CityRecord) Key() string        { return r.ID }
func (r *CityRecord) Kind() string       { return "offline_city" }
func (r *CityRecord) SchemaVersion() int { return 1 }

func (r *CityRecord) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.MinZoom > r.MaxZoom {
		return errors.New("minZoom exceeds maxZoom")
	}
	return nil
}
