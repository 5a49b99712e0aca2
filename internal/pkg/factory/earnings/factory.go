package earnings

import (
	"math"

	"courier-sync/internal/entities"
)

type EarningsFactory struct{}

func New() *EarningsFactory {
	return &EarningsFactory{}
}

// Calculate pays the per-package rate for delivered packages plus the highest
// bonus whose delivery threshold was reached. Failed stops earn nothing.
func (f *EarningsFactory) Calculate(settings entities.Settings, stops []entities.Stop) float64 {
	var packages, deliveredStops int
	for _, stop := range stops {
		if stop.Status != entities.StopDelivered {
			continue
		}
		deliveredStops++
		packages += stop.DeliveredPackages()
	}

	total := float64(packages) * settings.RatePerPackage

	var bonus float64
	for _, threshold := range settings.BonusThresholds {
		if deliveredStops >= threshold.Deliveries && threshold.Bonus > bonus {
			bonus = threshold.Bonus
		}
	}

	return math.Round((total+bonus)*100) / 100
}
