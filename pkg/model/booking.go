package model

import "time"

const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"

	// BookingReferencePrefix starts every human-readable booking
	// reference, e.g. TR-482913.
	BookingReferencePrefix = "TR-"
)

type Booking struct {
	ID          string       `json:"-" bson:"_id,omitempty"`
	BookingID   string       `json:"bookingId" bson:"bookingId"`
	Email       string       `json:"email" bson:"email" validate:"required,email"`
	ResortID    string       `json:"resortId" bson:"resortId" validate:"required"`
	ResortName  string       `json:"resortName,omitempty" bson:"resortName,omitempty" validate:"omitempty,max=200"`
	StartDate   Date         `json:"startDate" bson:"startDate"`
	EndDate     Date         `json:"endDate" bson:"endDate"`
	Guests      int          `json:"guests,omitempty" bson:"guests,omitempty" validate:"omitempty,min=1,max=20"`
	PaymentInfo *PaymentInfo `json:"paymentInfo,omitempty" bson:"paymentInfo,omitempty"`
	Status      string       `json:"status" bson:"status"`

	Cancellation *Cancellation `json:"cancellation,omitempty" bson:"cancellation,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	PaidAt    time.Time `json:"paidAt,omitempty" bson:"paidAt,omitempty"`

	// Display dates are rendered per response for the owner listing
	// and never persisted.
	StartDateDisplay string `json:"startDateDisplay,omitempty" bson:"-"`
	EndDateDisplay   string `json:"endDateDisplay,omitempty" bson:"-"`
}

type PaymentInfo struct {
	CardNumber string `json:"cardNumber,omitempty" bson:"cardNumber,omitempty"`
	CardHolder string `json:"cardHolder,omitempty" bson:"cardHolder,omitempty"`
	Method     string `json:"method,omitempty" bson:"method,omitempty"`
}

// Cancellation is written exactly once, when the booking transitions to
// cancelled. RefundEligible is fixed at that moment and never
// recomputed.
type Cancellation struct {
	CancelledAt    time.Time `json:"cancelledAt" bson:"cancelledAt"`
	Reason         string    `json:"reason" bson:"reason"`
	RefundEligible bool      `json:"refundEligible" bson:"refundEligible"`
}

// BookingFilter narrows the administrative booking query. Zero values
// mean "no constraint".
type BookingFilter struct {
	Status    string
	ResortID  string
	StartDate *time.Time // stay start on or after
	EndDate   *time.Time // stay end on or before
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
