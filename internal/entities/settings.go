package entities

import "time"

type Settings struct {
	RatePerPackage  float64
	BonusThresholds []BonusThreshold
	StartAddress    string
	StartLocation   *Coordinates
	UpdatedAt       time.Time
}

// BonusThreshold pays Bonus once at least Deliveries stops are delivered.
type BonusThreshold struct {
	Deliveries int
	Bonus      float64
}

type Session struct {
	UserID      string
	DisplayName string
	Token       string
	UpdatedAt   time.Time
}
