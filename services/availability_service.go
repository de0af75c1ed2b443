package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"hotel-portal/models"
)

// AvailabilityService answers "how many rooms of this type are free for
// [checkIn, checkOut)". Every query is versioned per draft: when the dates or
// room type change under an in-flight request, the old request is cancelled
// and its late result is discarded instead of overwriting the fresh state.
type AvailabilityService struct {
	api    AvailabilityAPI
	drafts DraftRepo

	mu sync.Mutex
	// inflight holds an entry only while a query is out for that draft.
	inflight map[string]*availabilityQuery
}

type availabilityQuery struct {
	version uint64
	cancel  context.CancelFunc
}

func NewAvailabilityService(api AvailabilityAPI, drafts DraftRepo) *AvailabilityService {
	return &AvailabilityService{
		api:      api,
		drafts:   drafts,
		inflight: make(map[string]*availabilityQuery),
	}
}

// Invalidate bumps the draft's query version and cancels any in-flight
// request, so a response for superseded parameters can never apply. The map
// entry is dropped; a running Refresh still holds the bumped query and will
// see itself superseded.
func (s *AvailabilityService) Invalidate(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q, ok := s.inflight[draftID]; ok {
		q.version++
		if q.cancel != nil {
			q.cancel()
			q.cancel = nil
		}
		delete(s.inflight, draftID)
	}
}

// Refresh queries availability for the draft's current (room type, dates)
// pair and stores the snapshot on the draft. A backend failure degrades to
// the Unknown state: browsing continues, counts are never fabricated.
func (s *AvailabilityService) Refresh(ctx context.Context, draft *models.BookingDraft) (*models.Availability, error) {
	if draft.CheckIn.IsZero() || draft.CheckOut.IsZero() {
		return nil, models.NewFieldError("checkInDate", "dates are required before checking availability")
	}

	qctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	q, ok := s.inflight[draft.ID]
	if !ok {
		q = &availabilityQuery{}
		s.inflight[draft.ID] = q
	}
	if q.cancel != nil {
		q.cancel()
	}
	q.version++
	q.cancel = cancel
	version := q.version
	s.mu.Unlock()

	result, err := s.api.CheckAvailability(qctx, draft.RoomTypeID, draft.CheckIn, draft.CheckOut)

	s.mu.Lock()
	current := q.version == version
	if current {
		// Still the freshest query: no one bumped the version, so the map
		// entry is still ours and can go.
		q.cancel = nil
		delete(s.inflight, draft.ID)
	}
	s.mu.Unlock()
	cancel()

	if !current {
		// Parameters changed while this query was in flight.
		return nil, ErrSuperseded
	}

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"roomType": draft.RoomTypeID,
			"checkIn":  draft.CheckIn.String(),
			"checkOut": draft.CheckOut.String(),
		}).Warn("availability query failed, reporting unknown")
		result = models.Availability{
			State:    models.AvailabilityUnknown,
			RoomType: draft.RoomTypeID,
			CheckIn:  draft.CheckIn,
			CheckOut: draft.CheckOut,
		}
	}

	if result.State == models.AvailabilityAvailable && len(result.Rooms) == 0 {
		result.Rooms = synthesizeRoomNumbers(draft.RoomTypeCode, result.Available)
	}

	if err := s.apply(ctx, draft.ID, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// apply re-reads the draft and attaches the snapshot only if the draft still
// holds the same parameters, then persists.
func (s *AvailabilityService) apply(ctx context.Context, draftID string, a *models.Availability) error {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return err
	}
	if !draft.CheckIn.Equal(a.CheckIn.Time) || !draft.CheckOut.Equal(a.CheckOut.Time) || draft.RoomTypeID != a.RoomType {
		return ErrSuperseded
	}
	draft.Availability = a
	return s.drafts.Save(ctx, draft)
}

// synthesizeRoomNumbers builds {code}{NN} numbers when the backend only
// reports counts.
func synthesizeRoomNumbers(code string, count int) []string {
	if count <= 0 {
		return nil
	}
	rooms := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		rooms = append(rooms, fmt.Sprintf("%s%02d", code, i))
	}
	return rooms
}
