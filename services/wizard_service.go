package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-portal/models"
)

// WizardService drives the three-step booking wizard:
// Details(1) -> GuestInfo(2) -> Review(3), then checkout.
// Forward progress is gated on the active step's validation; a failed gate
// leaves the step untouched and reports the offending field.
type WizardService struct {
	drafts       DraftRepo
	api          RoomTypeAPI
	availability *AvailabilityService

	now func() time.Time
}

func NewWizardService(drafts DraftRepo, api RoomTypeAPI, availability *AvailabilityService) *WizardService {
	return &WizardService{
		drafts:       drafts,
		api:          api,
		availability: availability,
		now:          time.Now,
	}
}

// CreateDraft starts a wizard for one room type. Authenticated users skip the
// login-gated first step and land on GuestInfo directly.
func (s *WizardService) CreateDraft(ctx context.Context, roomTypeID uint, sess *models.Session) (*models.BookingDraft, error) {
	rt, err := s.api.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	today := models.DateOf(s.now())
	now := s.now().UTC()

	draft := &models.BookingDraft{
		ID:            uuid.NewString(),
		Step:          models.StepDetails,
		RoomTypeID:    rt.ID,
		RoomTypeCode:  rt.Code,
		PricePerNight: rt.PricePerNight,
		MaxGuests:     rt.MaxGuests,
		CheckIn:       today,
		CheckOut:      today.AddDays(1),
		Guests:        1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if sess != nil {
		draft.SessionID = sess.ID
		draft.Step = models.StepGuestInfo
	}
	draft.Reprice()

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

func (s *WizardService) GetDraft(ctx context.Context, id string) (*models.BookingDraft, error) {
	return s.drafts.Get(ctx, id)
}

func (s *WizardService) DiscardDraft(ctx context.Context, id string) error {
	if s.availability != nil {
		s.availability.Invalidate(id)
	}
	return s.drafts.Delete(ctx, id)
}

// DraftUpdate carries partial edits; nil means "leave alone".
type DraftUpdate struct {
	CheckIn         *models.Date `json:"checkInDate"`
	CheckOut        *models.Date `json:"checkOutDate"`
	Guests          *int         `json:"guests"`
	Phone           *string      `json:"phone"`
	SpecialRequests *string      `json:"specialRequests"`
	RoomNumber      *string      `json:"roomNumber"`
}

// UpdateDraft applies edits with the date invariants from the wizard:
// check-out strictly after check-in (auto-advanced when violated), guest
// count within 1..capacity, room numbers only from the current availability
// set. Any date change clears the room selection and the availability
// snapshot, and the total is repriced.
func (s *WizardService) UpdateDraft(ctx context.Context, id string, upd DraftUpdate) (*models.BookingDraft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	datesChanged := false

	if upd.CheckIn != nil && !upd.CheckIn.IsZero() {
		draft.CheckIn = *upd.CheckIn
		datesChanged = true
	}
	if upd.CheckOut != nil && !upd.CheckOut.IsZero() {
		draft.CheckOut = *upd.CheckOut
		datesChanged = true
	}
	// Check-out must stay strictly after check-in.
	if datesChanged && !draft.CheckIn.IsZero() && !draft.CheckOut.After(draft.CheckIn.Time) {
		draft.CheckOut = draft.CheckIn.AddDays(1)
	}

	if upd.Guests != nil {
		if *upd.Guests < 1 || (draft.MaxGuests > 0 && *upd.Guests > draft.MaxGuests) {
			return nil, models.NewFieldError("guests",
				fmt.Sprintf("guest count must be between 1 and %d", draft.MaxGuests))
		}
		draft.Guests = *upd.Guests
	}
	if upd.Phone != nil {
		draft.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.SpecialRequests != nil {
		draft.SpecialRequests = *upd.SpecialRequests
	}

	if datesChanged {
		draft.RoomNumber = ""
		draft.Availability = nil
		draft.Reprice()
		if s.availability != nil {
			s.availability.Invalidate(draft.ID)
		}
	}

	if upd.RoomNumber != nil && *upd.RoomNumber != "" {
		if !draft.Availability.HasRoom(*upd.RoomNumber) {
			return nil, models.NewFieldError("roomNumber", "room is not in the available set")
		}
		draft.RoomNumber = *upd.RoomNumber
	}

	draft.UpdatedAt = s.now().UTC()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// Advance moves the wizard one step forward. The active step's gate must
// pass; otherwise the draft is returned unchanged alongside the field error.
func (s *WizardService) Advance(ctx context.Context, id string, sess *models.Session) (*models.BookingDraft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch draft.Step {
	case models.StepDetails:
		if ferr := s.validateDetails(draft); ferr != nil {
			return draft, ferr
		}
		if sess == nil {
			// Login gate: the controller sends the draft along so the flow
			// resumes after authentication.
			return draft, ErrAuthRequired
		}
		draft.Step = models.StepGuestInfo
	case models.StepGuestInfo:
		if ferr := validateGuestInfo(draft); ferr != nil {
			return draft, ferr
		}
		draft.Step = models.StepReview
	case models.StepReview:
		return draft, fmt.Errorf("already at review, use checkout")
	default:
		return draft, fmt.Errorf("unknown wizard step %d", draft.Step)
	}

	draft.UpdatedAt = s.now().UTC()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// Back steps the wizard towards Details; it never goes below the first step.
func (s *WizardService) Back(ctx context.Context, id string) (*models.BookingDraft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step > models.StepDetails {
		draft.Step--
		draft.UpdatedAt = s.now().UTC()
		if err := s.drafts.Save(ctx, draft); err != nil {
			return nil, fmt.Errorf("save draft: %w", err)
		}
	}
	return draft, nil
}

func (s *WizardService) validateDetails(d *models.BookingDraft) *models.FieldError {
	today := models.DateOf(s.now())
	if d.CheckIn.IsZero() {
		return models.NewFieldError("checkInDate", "check-in date is required")
	}
	if d.CheckIn.Before(today.Time) {
		return models.NewFieldError("checkInDate", "check-in date cannot be in the past")
	}
	if d.CheckOut.IsZero() {
		return models.NewFieldError("checkOutDate", "check-out date is required")
	}
	if !d.CheckOut.After(d.CheckIn.Time) {
		return models.NewFieldError("checkOutDate", "check-out must be after check-in")
	}
	if d.Guests < 1 || (d.MaxGuests > 0 && d.Guests > d.MaxGuests) {
		return models.NewFieldError("guests",
			fmt.Sprintf("guest count must be between 1 and %d", d.MaxGuests))
	}
	return nil
}

func validateGuestInfo(d *models.BookingDraft) *models.FieldError {
	if strings.TrimSpace(d.Phone) == "" {
		return models.NewFieldError("phone", "phone number is required")
	}
	// Special requests are optional and unconstrained.
	return nil
}
