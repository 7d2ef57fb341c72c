package services

import (
	"context"
	"time"
)

type StoreState string

const (
	StoreStateUnknown StoreState = "unknown"
	StoreStateUp      StoreState = "up"
	StoreStateDown    StoreState = "down"
)

// StoreHealth is the result of the most recent store ping.
type StoreHealth struct {
	Driver    string     `json:"driver"`
	State     StoreState `json:"state"`
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
	Latency   string     `json:"latency,omitempty"`
}

type StoreMonitorService interface {
	Check(ctx context.Context) StoreHealth
	Snapshot() StoreHealth
}
