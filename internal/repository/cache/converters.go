package cache

import "courier-sync/internal/entities"

func LocationToDomain(l *LocationDB) *entities.DeviceLocation {
	return &entities.DeviceLocation{
		Coordinates: entities.Coordinates{Latitude: l.Latitude, Longitude: l.Longitude},
		Accuracy:    l.Accuracy,
		RecordedAt:  l.RecordedAt,
	}
}

func LocationFromDomain(l *entities.DeviceLocation) *LocationDB {
	return &LocationDB{
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		Accuracy:   l.Accuracy,
		RecordedAt: l.RecordedAt,
	}
}

// Polygons are stored as [lat, lon] pairs.
func SectorToDomain(s *SectorDB) entities.Sector {
	polygon := make([]entities.Coordinates, 0, len(s.Polygon))
	for _, p := range s.Polygon {
		polygon = append(polygon, entities.Coordinates{Latitude: p[0], Longitude: p[1]})
	}
	return entities.Sector{
		ID:        s.ID,
		Name:      s.Name,
		Polygon:   polygon,
		CreatedAt: s.CreatedAt,
	}
}

func SectorFromDomain(s *entities.Sector) SectorDB {
	polygon := make([][2]float64, 0, len(s.Polygon))
	for _, p := range s.Polygon {
		polygon = append(polygon, [2]float64{p.Latitude, p.Longitude})
	}
	return SectorDB{
		ID:        s.ID,
		Name:      s.Name,
		Polygon:   polygon,
		CreatedAt: s.CreatedAt,
	}
}
