package model

import (
	"time"

	"lux/shared/model"
)

const (
	TableName  = "check_in_records"
	EntityName = "check_in_record"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldGuestName    = "guest_name"
	FieldRoomID       = "room_id"
	FieldRoomNumber   = "room_number"
	FieldStatus       = "status"
	FieldCheckedInAt  = "checked_in_at"
	FieldCheckedOutAt = "checked_out_at"
	FieldNotes        = "notes"
)

type CheckInRecord struct {
	ID           string     `db:"id"`
	BookingID    *string    `db:"booking_id"`
	GuestName    string     `db:"guest_name"`
	RoomID       string     `db:"room_id"`
	RoomNumber   string     `db:"room_number"`
	Status       string     `db:"status"`
	CheckedInAt  *time.Time `db:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at"`
	Notes        *string    `db:"notes"`
	model.Metadata
}
