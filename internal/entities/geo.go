package entities

import "time"

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type DeviceLocation struct {
	Coordinates
	Accuracy   float64
	RecordedAt time.Time
}

type Sector struct {
	ID        string
	Name      string
	Polygon   []Coordinates
	CreatedAt time.Time
}

type SequencingStrategy string

const (
	StrategyNearestNeighbor SequencingStrategy = "nearest_neighbor"
	StrategyStreetGrouping  SequencingStrategy = "street_grouping"
	StrategySectors         SequencingStrategy = "sectors"
)

func (s SequencingStrategy) String() string {
	return string(s)
}

type SequenceRequest struct {
	Strategy     SequencingStrategy
	Start        *Coordinates
	PreferServer bool
}

type SequenceResult struct {
	Strategy SequencingStrategy
	Source   string
	Stops    []Stop
}
