package syncqueue

import "courier-sync/internal/entities"

func ToDomain(r *ItemRecord) entities.SyncQueueItem {
	return entities.SyncQueueItem{
		ID:        r.ID,
		Operation: entities.SyncOperation(r.Type),
		Method:    r.Method,
		Endpoint:  r.Endpoint,
		Payload:   r.Payload,
		Timestamp: r.Timestamp,
		Retries:   r.Retries,
	}
}

func FromDomain(i *entities.SyncQueueItem) *ItemRecord {
	return &ItemRecord{
		ID:        i.ID,
		Type:      i.Operation.String(),
		Method:    i.Method,
		Endpoint:  i.Endpoint,
		Payload:   i.Payload,
		Timestamp: i.Timestamp,
		Retries:   i.Retries,
	}
}
