package model

import (
	"lux/shared/constant"
	"lux/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldReferenceNumber = "reference_number"
	FieldRoomID          = "room_id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldTotalAmount     = "total_amount"
	FieldBookingStatus   = "booking_status"
	FieldPaymentStatus   = "payment_status"
	FieldPaymentMethod   = "payment_method"
	FieldSpecialRequests = "special_requests"
	FieldPaymentProofURL = "payment_proof_url"
)

type Booking struct {
	ID              string    `db:"id"`
	ReferenceNumber string    `db:"reference_number"`
	RoomID          string    `db:"room_id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      string    `db:"guest_phone"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	TotalAmount     int64     `db:"total_amount"`
	BookingStatus   string    `db:"booking_status"`
	PaymentStatus   string    `db:"payment_status"`
	PaymentMethod   *string   `db:"payment_method"`
	SpecialRequests *string   `db:"special_requests"`
	PaymentProofURL *string   `db:"payment_proof_url"`
	model.Metadata
}

// transitions is the enforced booking lifecycle: a booking moves forward from
// pending through confirmed to completed, and may be cancelled from either
// non-terminal state. Terminal states accept no further transition.
var transitions = map[string][]string{
	constant.BookingStatusPending:   {constant.BookingStatusConfirmed, constant.BookingStatusCancelled},
	constant.BookingStatusConfirmed: {constant.BookingStatusCompleted, constant.BookingStatusCancelled},
	constant.BookingStatusCancelled: {},
	constant.BookingStatusCompleted: {},
}

// CanTransition reports whether a booking may move from one status to another.
// Writing the current status back is allowed so staff can resave a record.
func CanTransition(from, to string) bool {
	if from == to {
		_, known := transitions[from]

		return known
	}

	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether a status frees the booked room.
func IsTerminal(status string) bool {
	return status == constant.BookingStatusCancelled || status == constant.BookingStatusCompleted
}
