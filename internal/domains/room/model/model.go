package model

import (
	"lux/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldType          = "type"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldFeatures      = "features"
	FieldImageURL      = "image_url"
	FieldIsAvailable   = "is_available"
)

type Room struct {
	ID            string         `db:"id"`
	RoomNumber    string         `db:"room_number"`
	Name          string         `db:"name"`
	Description   *string        `db:"description"`
	Type          string         `db:"type"`
	PricePerNight int64          `db:"price_per_night"`
	Capacity      int            `db:"capacity"`
	Features      pq.StringArray `db:"features"`
	ImageURL      *string        `db:"image_url"`
	IsAvailable   bool           `db:"is_available"`
	model.Metadata
}
