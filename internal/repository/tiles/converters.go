package tiles

import "courier-sync/internal/entities"

func TileToDomain(r *TileRecord) *entities.MapTile {
	return &entities.MapTile{
		Zoom:      r.Zoom,
		X:         r.X,
		Y:         r.Y,
		Data:      r.Data,
		FetchedAt: r.FetchedAt,
	}
}

func TileFromDomain(t *entities.MapTile) *TileRecord {
	return &TileRecord{
		Zoom:      t.Zoom,
		X:         t.X,
		Y:         t.Y,
		Data:      t.Data,
		FetchedAt: t.FetchedAt,
	}
}

func CityToDomain(r *CityRecord) entities.OfflineCity {
	bounds := make([]entities.Coordinates, 0, len(r.Bounds))
	for _, b := range r.Bounds {
		bounds = append(bounds, entities.Coordinates{Latitude: b[0], Longitude: b[1]})
	}
	return entities.OfflineCity{
		ID:           r.ID,
		Name:         r.Name,
		Bounds:       bounds,
		MinZoom:      r.MinZoom,
		MaxZoom:      r.MaxZoom,
		TileCount:    r.TileCount,
		DownloadedAt: r.DownloadedAt,
	}
}

func CityFromDomain(c *entities.OfflineCity) *CityRecord {
	bounds := make([][2]float64, 0, len(c.Bounds))
	for _, b := range c.Bounds {
		bounds = append(bounds, [2]float64{b.Latitude, b.Longitude})
	}
	return &CityRecord{
		ID:           c.ID,
		Name:         c.Name,
		Bounds:       bounds,
		MinZoom:      c.MinZoom,
		MaxZoom:      c.MaxZoom,
		TileCount:    c.TileCount,
		DownloadedAt: c.DownloadedAt,
	}
}
