package sync_request

type stopCreatePayload struct {
	ID           string  `json:"id"`
	ItineraryID  string  `json:"itineraryId"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	PackageCount int     `json:"packageCount"`
	Sequence     int     `json:"sequenceOrder"`
}

type stopEditPayload struct {
	Address      *string  `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	PackageCount *int     `json:"packageCount,omitempty"`
}

type stopStatusPayload struct {
	Status                string `json:"status"`
	DeliveredPackageCount *int   `json:"deliveredPackageCount,omitempty"`
	DeliveryTime          *int64 `json:"deliveryTime,omitempty"`
}

type stopReorderPayload struct {
	StopIDs []string `json:"stopIds"`
}

type itineraryPayload struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	TotalEarnings float64 `json:"totalEarnings"`
}
