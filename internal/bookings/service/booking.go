package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	bookingserrors "resortly/internal/bookings/errors"
	"resortly/internal/bookings/repository"
	"resortly/internal/bookings/validator"
	"resortly/pkg/config"
	apperrors "resortly/pkg/errors"
	"resortly/pkg/events"
	"resortly/pkg/locale"
	"resortly/pkg/model"
	"resortly/pkg/sanitizer"
)

const (
	// DefaultCancellationReason is stored when the caller gives none.
	DefaultCancellationReason = "No reason provided"

	// createAttempts bounds reference regeneration when a generated
	// booking reference collides with the unique index.
	createAttempts = 3
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListByOwner(ctx context.Context, email string) ([]*model.Booking, error)
	Search(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error)
	Cancel(ctx context.Context, ref, reason string) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	v *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: v,
		publisher: publisher,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a new active booking under a generated reference and
// returns it with the card number masked. The stored document keeps the
// full payment info; only the response is redacted.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Invalid booking payload", map[string]any{"error": err.Error()})
	}

	now := s.now().Truncate(time.Millisecond)
	booking.Status = model.BookingStatusActive
	booking.Cancellation = nil
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.PaidAt = now

	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		booking.BookingID = generateReference()
		err = s.repo.Create(ctx, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, bookingserrors.ErrDuplicateReference) {
			s.cfg.Log.Error("Failed to create booking", "error", err)
			return apperrors.Internal("Failed to create booking", err)
		}
		s.cfg.Log.Warn("Booking reference collision, regenerating", "booking_id", booking.BookingID)
	}
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.publishEvent(ctx, events.TypeBookingCreated, booking, nil)
	s.cfg.Log.Info("Booking created",
		"booking_id", booking.BookingID,
		"email", booking.Email,
		"resort_id", booking.ResortID,
	)

	if booking.PaymentInfo != nil && booking.PaymentInfo.CardNumber != "" {
		booking.PaymentInfo = &model.PaymentInfo{
			CardNumber: sanitizer.MaskCardNumber(booking.PaymentInfo.CardNumber),
			CardHolder: booking.PaymentInfo.CardHolder,
			Method:     booking.PaymentInfo.Method,
		}
	}
	return nil
}

// ListByOwner returns the owner's bookings newest first, with payment
// info excluded and stay dates rendered for display.
func (s *bookingService) ListByOwner(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("email query parameter is required")
	}

	bookings, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	for _, b := range bookings {
		b.PaymentInfo = nil
		b.StartDateDisplay = locale.FormatShortDate(b.StartDate.Time)
		b.EndDateDisplay = locale.FormatShortDate(b.EndDate.Time)
	}
	return bookings, nil
}

func (s *bookingService) Search(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	bookings, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to search bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// Cancel transitions an active booking to cancelled. Refund eligibility
// is computed once, at cancellation time, and stored with the booking.
func (s *bookingService) Cancel(ctx context.Context, ref, reason string) (*model.Booking, error) {
	if ref == "" {
		return nil, apperrors.InvalidInput("booking id is required")
	}

	existing, err := s.repo.FindByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", ref)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	if existing.IsCancelled() {
		return nil, apperrors.InvalidInput("Booking already cancelled")
	}

	reason = sanitizer.SanitizeText(reason)
	if reason == "" {
		reason = DefaultCancellationReason
	}

	now := s.now().Truncate(time.Millisecond)
	cancellation := &model.Cancellation{
		CancelledAt:    now,
		Reason:         reason,
		RefundEligible: refundEligible(now, existing.StartDate.Time, s.cfg.RefundCutoff),
	}

	cancelled, err := s.repo.CancelActive(ctx, ref, cancellation)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			// Lost the race: another request cancelled it first.
			return nil, apperrors.InvalidInput("Booking already cancelled")
		}
		s.cfg.Log.Error("Failed to cancel booking", "booking_id", ref, "error", err)
		return nil, apperrors.Internal("Failed to cancel booking", err)
	}

	s.publishEvent(ctx, events.TypeBookingCancelled, cancelled, &cancellation.RefundEligible)
	s.cfg.Log.Info("Booking cancelled",
		"booking_id", ref,
		"refund_eligible", cancellation.RefundEligible,
		"reason", reason,
	)
	return cancelled, nil
}

// refundEligible reports whether a cancellation at cancelledAt is
// entitled to a refund: strictly before the cutoff ahead of the stay
// start. Cancelling exactly at the cutoff is not eligible.
func refundEligible(cancelledAt, stayStart time.Time, cutoff time.Duration) bool {
	return cancelledAt.Before(stayStart.Add(-cutoff))
}

func generateReference() string {
	// 100000..999999 keeps the suffix at exactly six digits.
	return fmt.Sprintf("%s%d", model.BookingReferencePrefix, rand.Intn(900000)+100000)
}

func (s *bookingService) sanitize(b *model.Booking) {
	b.ResortName = sanitizer.SanitizeText(b.ResortName)
	if b.PaymentInfo != nil {
		b.PaymentInfo.CardHolder = sanitizer.SanitizeText(b.PaymentInfo.CardHolder)
	}
}

// publishEvent is best-effort: a broker outage must not fail the
// booking operation itself.
func (s *bookingService) publishEvent(ctx context.Context, eventType string, b *model.Booking, refundEligible *bool) {
	payload := events.BookingEvent{
		BookingID:      b.BookingID,
		Email:          b.Email,
		ResortID:       b.ResortID,
		Status:         b.Status,
		StartDate:      b.StartDate.Time,
		EndDate:        b.EndDate.Time,
		RefundEligible: refundEligible,
		OccurredAt:     s.now(),
	}

	msg, err := events.NewMessage(eventType, b.BookingID, payload)
	if err != nil {
		s.cfg.Log.Error("Failed to build booking event", "type", eventType, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish booking event",
			"type", eventType,
			"booking_id", b.BookingID,
			"error", err,
		)
	}
}
