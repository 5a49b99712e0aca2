package entities

import (
	"fmt"
	"time"
)

type MapTile struct {
	Zoom      int
	X         int
	Y         int
	Data      []byte
	FetchedAt time.Time
}

func TileKey(zoom, x, y int) string {
	return fmt.Sprintf("%d/%d/%d", zoom, x, y)
}

type OfflineCity struct {
	ID           string
	Name         string
	Bounds       []Coordinates
	MinZoom      int
	MaxZoom      int
	TileCount    int
	DownloadedAt time.Time
}
