package sequencing

import "courier-sync/internal/entities"

// containsPoint reports whether p lies inside polygon using ray casting, with
// longitude as x and latitude as y.
func containsPoint(polygon []entities.Coordinates, p entities.Coordinates) bool {
	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		xi, yi := polygon[i].Longitude, polygon[i].Latitude
		xj, yj := polygon[j].Longitude, polygon[j].Latitude

		if (yi > p.Latitude) != (yj > p.Latitude) &&
			p.Longitude < (xj-xi)*(p.Latitude-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// sectorGrouping groups stops by the first sector containing them, in sector
// creation order. Stops outside every sector follow in input order.
func sectorGrouping(sectors []entities.Sector, stops []entities.Stop) []entities.Stop {
	groups := make([][]entities.Stop, len(sectors)+1)
	for _, stop := range stops {
		group := len(sectors)
		for i := range sectors {
			if containsPoint(sectors[i].Polygon, stop.Coordinates()) {
				group = i
				break
			}
		}
		groups[group] = append(groups[group], stop)
	}

	ordered := make([]entities.Stop, 0, len(stops))
	for _, group := range groups {
		ordered = append(ordered, group...)
	}
	return ordered
}

func validPolygon(polygon []entities.Coordinates) bool {
	distinct := make(map[entities.Coordinates]struct{}, len(polygon))
	for _, p := range polygon {
		if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
			return false
		}
		distinct[p] = struct{}{}
	}
	return len(distinct) >= 3
}
