package service

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingserrors "resortly/internal/bookings/errors"
	"resortly/internal/bookings/validator"
	"resortly/pkg/config"
	apperrors "resortly/pkg/errors"
	"resortly/pkg/events"
	"resortly/pkg/logger"
	"resortly/pkg/model"
	"resortly/pkg/sanitizer"
)

var referencePattern = regexp.MustCompile(`^TR-\d{6}$`)

type mockBookingRepository struct {
	createFunc          func(ctx context.Context, b *model.Booking) error
	findByReferenceFunc func(ctx context.Context, ref string) (*model.Booking, error)
	findByEmailFunc     func(ctx context.Context, email string) ([]*model.Booking, error)
	searchFunc          func(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error)
	cancelActiveFunc    func(ctx context.Context, ref string, c *model.Cancellation) (*model.Booking, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, b *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) FindByReference(ctx context.Context, ref string) (*model.Booking, error) {
	if m.findByReferenceFunc != nil {
		return m.findByReferenceFunc(ctx, ref)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockBookingRepository) Search(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockBookingRepository) CancelActive(ctx context.Context, ref string, c *model.Cancellation) (*model.Booking, error) {
	if m.cancelActiveFunc != nil {
		return m.cancelActiveFunc(ctx, ref, c)
	}
	return nil, bookingserrors.ErrNotFound
}

type capturePublisher struct {
	messages []events.Message
}

func (p *capturePublisher) Publish(_ context.Context, msg events.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func newTestService(t *testing.T, repo *mockBookingRepository, pub events.Publisher, at time.Time) *bookingService {
	t.Helper()

	cfg := &config.Config{
		Log:          logger.New(logger.Config{Level: "error", Service: "test"}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		RefundCutoff: 72 * time.Hour,
	}
	if pub == nil {
		pub = events.NopPublisher{}
	}

	svc, ok := NewBookingService(repo, validator.NewBookingValidator(cfg.Log), pub, cfg).(*bookingService)
	require.True(t, ok)
	if !at.IsZero() {
		svc.now = func() time.Time { return at }
	}
	return svc
}

func newBookingPayload() *model.Booking {
	return &model.Booking{
		Email:     "guest@example.com",
		ResortID:  "r1",
		StartDate: model.NewDate(time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)),
		EndDate:   model.NewDate(time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)),
		PaymentInfo: &model.PaymentInfo{
			CardNumber: "4111111111111234",
			CardHolder: "Dana Levi",
		},
	}
}

func TestCreate_MasksCardAndGeneratesReference(t *testing.T) {
	var stored model.Booking
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, b *model.Booking) error {
			stored = *b
			return nil
		},
	}
	svc := newTestService(t, repo, nil, time.Time{})

	booking := newBookingPayload()
	require.NoError(t, svc.Create(context.Background(), booking))

	assert.Regexp(t, referencePattern, booking.BookingID)
	assert.Equal(t, model.BookingStatusActive, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
	assert.False(t, booking.PaidAt.IsZero())

	// Stored document keeps the full card; the response is masked.
	require.NotNil(t, stored.PaymentInfo)
	assert.Equal(t, "4111111111111234", stored.PaymentInfo.CardNumber)
	require.NotNil(t, booking.PaymentInfo)
	assert.Equal(t, sanitizer.CardMaskPrefix+"1234", booking.PaymentInfo.CardNumber)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newTestService(t, &mockBookingRepository{}, nil, time.Time{})

	booking := newBookingPayload()
	booking.ResortID = ""

	err := svc.Create(context.Background(), booking)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.AsAppError(err).StatusCode())
}

func TestCreate_PersistenceFailureIsInternal(t *testing.T) {
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, b *model.Booking) error {
			return errors.New("no reachable servers")
		},
	}
	svc := newTestService(t, repo, nil, time.Time{})

	err := svc.Create(context.Background(), newBookingPayload())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.AsAppError(err).StatusCode())
}

func TestCreate_RegeneratesReferenceOnCollision(t *testing.T) {
	var attempts []string
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, b *model.Booking) error {
			attempts = append(attempts, b.BookingID)
			if len(attempts) == 1 {
				return bookingserrors.ErrDuplicateReference
			}
			return nil
		},
	}
	svc := newTestService(t, repo, nil, time.Time{})

	require.NoError(t, svc.Create(context.Background(), newBookingPayload()))
	require.Len(t, attempts, 2)
	assert.Regexp(t, referencePattern, attempts[0])
	assert.Regexp(t, referencePattern, attempts[1])
}

func TestCreate_PublishesCreatedEvent(t *testing.T) {
	pub := &capturePublisher{}
	svc := newTestService(t, &mockBookingRepository{}, pub, time.Time{})

	booking := newBookingPayload()
	require.NoError(t, svc.Create(context.Background(), booking))

	require.Len(t, pub.messages, 1)
	assert.Equal(t, booking.BookingID, pub.messages[0].Key)
	assert.Equal(t, events.TypeBookingCreated, pub.messages[0].Headers[events.HeaderEventType])
}

func TestListByOwner(t *testing.T) {
	t.Run("missing email is a client error", func(t *testing.T) {
		svc := newTestService(t, &mockBookingRepository{}, nil, time.Time{})

		_, err := svc.ListByOwner(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.AsAppError(err).StatusCode())
	})

	t.Run("strips payment info and renders display dates", func(t *testing.T) {
		repo := &mockBookingRepository{
			findByEmailFunc: func(ctx context.Context, email string) ([]*model.Booking, error) {
				return []*model.Booking{
					{
						BookingID:   "TR-123456",
						Email:       email,
						StartDate:   model.NewDate(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)),
						EndDate:     model.NewDate(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)),
						PaymentInfo: &model.PaymentInfo{CardNumber: "4111111111111234"},
					},
				}, nil
			},
		}
		svc := newTestService(t, repo, nil, time.Time{})

		bookings, err := svc.ListByOwner(context.Background(), "guest@example.com")
		require.NoError(t, err)
		require.Len(t, bookings, 1)

		assert.Nil(t, bookings[0].PaymentInfo)
		assert.Equal(t, "Jun 10, 2025", bookings[0].StartDateDisplay)
		assert.Equal(t, "Jun 14, 2025", bookings[0].EndDateDisplay)
	})
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(t, &mockBookingRepository{}, nil, time.Time{})

	_, err := svc.Cancel(context.Background(), "TR-000000", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.AsAppError(err).StatusCode())
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	original := &model.Cancellation{
		CancelledAt:    time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC),
		Reason:         "change of plans",
		RefundEligible: true,
	}
	booking := &model.Booking{
		BookingID:    "TR-123456",
		Status:       model.BookingStatusCancelled,
		Cancellation: original,
	}
	cancelCalled := false
	repo := &mockBookingRepository{
		findByReferenceFunc: func(ctx context.Context, ref string) (*model.Booking, error) {
			return booking, nil
		},
		cancelActiveFunc: func(ctx context.Context, ref string, c *model.Cancellation) (*model.Booking, error) {
			cancelCalled = true
			return nil, bookingserrors.ErrNotFound
		},
	}
	svc := newTestService(t, repo, nil, time.Time{})

	_, err := svc.Cancel(context.Background(), "TR-123456", "second try")
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Equal(t, "Booking already cancelled", appErr.Message)
	assert.False(t, cancelCalled, "second cancel must not reach the store")
	assert.Equal(t, original, booking.Cancellation, "cancellation sub-record must stay unchanged")
}

func TestCancel_LostRaceReportsAlreadyCancelled(t *testing.T) {
	repo := &mockBookingRepository{
		findByReferenceFunc: func(ctx context.Context, ref string) (*model.Booking, error) {
			return &model.Booking{BookingID: ref, Status: model.BookingStatusActive}, nil
		},
		cancelActiveFunc: func(ctx context.Context, ref string, c *model.Cancellation) (*model.Booking, error) {
			return nil, bookingserrors.ErrNotFound
		},
	}
	svc := newTestService(t, repo, nil, time.Time{})

	_, err := svc.Cancel(context.Background(), "TR-123456", "")
	require.Error(t, err)
	assert.Equal(t, "Booking already cancelled", apperrors.AsAppError(err).Message)
}

func TestCancel_RefundEligibilityBoundary(t *testing.T) {
	stayStart := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	deadline := stayStart.Add(-72 * time.Hour)

	tests := []struct {
		name         string
		cancelAt     time.Time
		wantEligible bool
	}{
		{"well before the cutoff", deadline.Add(-24 * time.Hour), true},
		{"one millisecond before the cutoff", deadline.Add(-time.Millisecond), true},
		{"exactly at the cutoff", deadline, false},
		{"after the cutoff", deadline.Add(time.Hour), false},
		{"after the stay started", stayStart.Add(24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var written *model.Cancellation
			repo := &mockBookingRepository{
				findByReferenceFunc: func(ctx context.Context, ref string) (*model.Booking, error) {
					return &model.Booking{
						BookingID: ref,
						Status:    model.BookingStatusActive,
						StartDate: model.NewDate(stayStart),
					}, nil
				},
				cancelActiveFunc: func(ctx context.Context, ref string, c *model.Cancellation) (*model.Booking, error) {
					written = c
					return &model.Booking{
						BookingID:    ref,
						Status:       model.BookingStatusCancelled,
						StartDate:    model.NewDate(stayStart),
						Cancellation: c,
					}, nil
				},
			}
			svc := newTestService(t, repo, nil, tt.cancelAt)

			cancelled, err := svc.Cancel(context.Background(), "TR-123456", "")
			require.NoError(t, err)
			require.NotNil(t, written)

			assert.Equal(t, tt.wantEligible, written.RefundEligible)
			assert.Equal(t, tt.wantEligible, cancelled.Cancellation.RefundEligible)
		})
	}
}

func TestCancel_DefaultsReasonAndPublishes(t *testing.T) {
	var written *model.Cancellation
	repo := &mockBookingRepository{
		findByReferenceFunc: func(ctx context.Context, ref string) (*model.Booking, error) {
			return &model.Booking{BookingID: ref, Status: model.BookingStatusActive}, nil
		},
		cancelActiveFunc: func(ctx context.Context, ref string, c *model.Cancellation) (*model.Booking, error) {
			written = c
			return &model.Booking{BookingID: ref, Status: model.BookingStatusCancelled, Cancellation: c}, nil
		},
	}
	pub := &capturePublisher{}
	svc := newTestService(t, repo, pub, time.Time{})

	_, err := svc.Cancel(context.Background(), "TR-123456", "   ")
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.Equal(t, DefaultCancellationReason, written.Reason)

	require.Len(t, pub.messages, 1)
	assert.Equal(t, events.TypeBookingCancelled, pub.messages[0].Headers[events.HeaderEventType])
}

func TestRefundEligible(t *testing.T) {
	stayStart := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	cutoff := 72 * time.Hour

	assert.True(t, refundEligible(stayStart.Add(-cutoff-time.Second), stayStart, cutoff))
	assert.False(t, refundEligible(stayStart.Add(-cutoff), stayStart, cutoff))
	assert.False(t, refundEligible(stayStart, stayStart, cutoff))
}
