package settings

import (
	"errors"
	"time"
)

const (
	settingsKey = "account"
	sessionKey  = "current"
)

type SettingsRecord struct {
	RatePerPackage  float64            `json:"ratePerPackage"`
	BonusThresholds []BonusThresholdDB `json:"bonusThresholds,omitempty"`
	StartAddress    string             `json:"startAddress,omitempty"`
	StartLatitude   *float64           `json:"startLatitude,omitempty"`
	StartLongitude  *float64           `json:"startLongitude,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type BonusThresholdDB struct {
	Deliveries int     `json:"deliveries"`
	Bonus      float64 `json:"bonus"`
}

func (r *SettingsRecord) Key() string        { return settingsKey }
func (r *SettingsRecord) Kind() string       { return "settings" }
func (r *SettingsRecord) SchemaVersion() int { return 1 }

func (r *SettingsRecord) Validate() error {
	if r.RatePerPackage < 0 {
		return errors.New("ratePerPackage must not be negative")
	}
	if (r.StartLatitude == nil) != (r.StartLongitude == nil) {
		return errors.New("start coordinates must be set together")
	}
	for _, t := range r.BonusThresholds {
		if t.Deliveries < 1 || t.Bonus < 0 {
			return errors.New("invalid bonus threshold")
		}
	}
	return nil
}

type SessionRecord struct {
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	Token       string    `json:"token"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *SessionRecord) Key() string        { return sessionKey }
func (r *SessionRecord) Kind() string       { return "session" }
func (r *SessionRecord) SchemaVersion() int { return 1 }

func (r *SessionRecord) Validate() error {
	if r.UserID == "" {
		return errors.New("userId is required")
	}
	return nil
}
