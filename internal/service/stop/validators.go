package stop

import (
	"strings"

	"courier-sync/internal/entities"
)

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

func isValidPackageCount(count int) bool {
	return count >= 1
}

func isValidDeliveredCount(delivered *int, packages int) bool {
	return delivered == nil || (*delivered >= 0 && *delivered <= packages)
}

func validateCreate(create entities.StopCreate) error {
	if !isValidAddress(create.Address) {
		return ErrInvalidAddress
	}
	if !isValidLatitude(create.Latitude) || !isValidLongitude(create.Longitude) {
		return ErrInvalidCoordinates
	}
	if !isValidPackageCount(create.PackageCount) {
		return ErrInvalidPackageCount
	}
	return nil
}

func validateModify(modify entities.StopModify) error {
	if modify.IsEmpty() {
		return ErrMissingFields
	}
	if modify.Address != nil && !isValidAddress(*modify.Address) {
		return ErrInvalidAddress
	}
	if (modify.Latitude != nil) != (modify.Longitude != nil) {
		return ErrInvalidCoordinates
	}
	if modify.Latitude != nil && (!isValidLatitude(*modify.Latitude) || !isValidLongitude(*modify.Longitude)) {
		return ErrInvalidCoordinates
	}
	if modify.PackageCount != nil && !isValidPackageCount(*modify.PackageCount) {
		return ErrInvalidPackageCount
	}
	return nil
}
