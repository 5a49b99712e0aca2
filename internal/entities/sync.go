package entities

import "encoding/json"

type SyncOperation string

const (
	OpStopCreate        SyncOperation = "stop.create"
	OpStopEdit          SyncOperation = "stop.edit"
	OpStopStatus        SyncOperation = "stop.status"
	OpStopDelete        SyncOperation = "stop.delete"
	OpStopSetCurrent    SyncOperation = "stop.set_current"
	OpStopReorder       SyncOperation = "stop.reorder"
	OpItineraryCreate   SyncOperation = "itinerary.create"
	OpItineraryFinalize SyncOperation = "itinerary.finalize"
)

func (o SyncOperation) String() string {
	return string(o)
}

// RemoteRequest is a mutation addressed to the remote delivery service.
type RemoteRequest struct {
	Operation SyncOperation
	Method    string
	Endpoint  string
	Payload   json.RawMessage
}

type SyncQueueItem struct {
	ID        string
	Operation SyncOperation
	Method    string
	Endpoint  string
	Payload   json.RawMessage
	Timestamp int64
	Retries   int
}

func (i SyncQueueItem) Request() RemoteRequest {
	return RemoteRequest{
		Operation: i.Operation,
		Method:    i.Method,
		Endpoint:  i.Endpoint,
		Payload:   i.Payload,
	}
}

type SubmitResult struct {
	Delivered bool
	ItemID    string
}

type DrainReport struct {
	Skipped    bool
	SkipReason string
	Processed  int
	Succeeded  int
	Conflicts  int
	Invalid    int
	Retried    int
	Dropped    int
	Halted     bool
	Remaining  int
}

type SyncState struct {
	Online      bool
	Draining    bool
	QueueLength int
	Items       []SyncQueueItem
}

// SyncSubject carries the data a remote request is built from.
// Only the fields relevant to the operation are set.
type SyncSubject struct {
	StopID       string
	Stop         *Stop
	Modify       *StopModify
	StatusUpdate *StopStatusUpdate
	OrderedIDs   []string
	Itinerary    *Itinerary
}
