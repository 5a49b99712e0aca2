package sync_request

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"courier-sync/internal/entities"
	"courier-sync/internal/service/syncqueue"
)

type builder func(subject entities.SyncSubject) (entities.RemoteRequest, error)

type RequestFactory struct {
	builders map[entities.SyncOperation]builder
}

func New() *RequestFactory {
	f := &RequestFactory{}
	f.builders = map[entities.SyncOperation]builder{
		entities.OpStopCreate:        f.stopCreate,
		entities.OpStopEdit:          f.stopEdit,
		entities.OpStopStatus:        f.stopStatus,
		entities.OpStopDelete:        f.stopDelete,
		entities.OpStopSetCurrent:    f.stopSetCurrent,
		entities.OpStopReorder:       f.stopReorder,
		entities.OpItineraryCreate:   f.itineraryCreate,
		entities.OpItineraryFinalize: f.itineraryFinalize,
	}

	return f
}

// Build maps a local mutation to the remote request that mirrors it.
func (f *RequestFactory) Build(op entities.SyncOperation, subject entities.SyncSubject) (entities.RemoteRequest, error) {
	build, ok := f.builders[op]
	if !ok {
		return entities.RemoteRequest{}, fmt.Errorf("%w: %s", syncqueue.ErrUndefinedOperation, op)
	}

	req, err := build(subject)
	if err != nil {
		return entities.RemoteRequest{}, fmt.Errorf("sync request %s: %w", op, err)
	}

	req.Operation = op

	return req, nil
}

func (f *RequestFactory) stopCreate(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if subject.Stop == nil {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	stop := subject.Stop

	return request(http.MethodPost, "/stops", stopCreatePayload{
		ID:           stop.ID,
		ItineraryID:  stop.ItineraryID,
		Address:      stop.Address,
		Latitude:     stop.Latitude,
		Longitude:    stop.Longitude,
		PackageCount: stop.PackageCount,
		Sequence:     stop.SequenceOrder,
	})
}

func (f *RequestFactory) stopEdit(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if subject.StopID == "" || subject.Modify == nil {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	return request(http.MethodPatch, stopPath(subject.StopID), stopEditPayload{
		Address:      subject.Modify.Address,
		Latitude:     subject.Modify.Latitude,
		Longitude:    subject.Modify.Longitude,
		PackageCount: subject.Modify.PackageCount,
	})
}

func (f *RequestFactory) stopStatus(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if subject.StopID == "" || subject.StatusUpdate == nil {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	payload := stopStatusPayload{
		Status:                string(subject.StatusUpdate.Status),
		DeliveredPackageCount: subject.StatusUpdate.DeliveredPackageCount,
	}
	if subject.Stop != nil && subject.Stop.DeliveryTime != nil {
		ms := subject.Stop.DeliveryTime.UnixMilli()
		payload.DeliveryTime = &ms
	}

	return request(http.MethodPatch, stopPath(subject.StopID)+"/status", payload)
}

func (f *RequestFactory) stopDelete(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if subject.StopID == "" {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	return request(http.MethodDelete, stopPath(subject.StopID), nil)
}

func (f *RequestFactory) stopSetCurrent(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if subject.StopID == "" {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	return request(http.MethodPost, stopPath(subject.StopID)+"/set-current", nil)
}

func (f *RequestFactory) stopReorder(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if len(subject.OrderedIDs) == 0 {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	return request(http.MethodPost, "/stops/reorder", stopReorderPayload{StopIDs: subject.OrderedIDs})
}

func (f *RequestFactory) itineraryCreate(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if subject.Itinerary == nil {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	return request(http.MethodPost, "/itinerary", toItineraryPayload(subject.Itinerary))
}

func (f *RequestFactory) itineraryFinalize(subject entities.SyncSubject) (entities.RemoteRequest, error) {
	if subject.Itinerary == nil {
		return entities.RemoteRequest{}, syncqueue.ErrIncompleteSubject
	}

	return request(http.MethodPost, "/itinerary/finalize", toItineraryPayload(subject.Itinerary))
}

func toItineraryPayload(it *entities.Itinerary) itineraryPayload {
	return itineraryPayload{
		ID:            it.ID,
		Name:          it.Name,
		Date:          it.Date.Format(entities.ItineraryDateLayout),
		Status:        string(it.Status),
		TotalEarnings: it.TotalEarnings,
	}
}

func stopPath(id string) string {
	return "/stops/" + url.PathEscape(id)
}

func request(method, endpoint string, payload any) (entities.RemoteRequest, error) {
	req := entities.RemoteRequest{Method: method, Endpoint: endpoint}
	if payload == nil {
		return req, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return entities.RemoteRequest{}, fmt.Errorf("marshal payload: %w", err)
	}
	req.Payload = data

	return req, nil
}
