package dto

import (
	"mime/multipart"

	"lux/internal/domains/room/model"
	"lux/shared"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber    string                `json:"room_number"     validate:"required,max=10"`
	Name          string                `json:"name"            validate:"required,max=100"`
	Description   *string               `json:"description"     validate:"omitempty,max=500"`
	Type          string                `json:"type"            validate:"required,oneof=standard deluxe executive suite presidential"`
	PricePerNight int64                 `json:"price_per_night" validate:"required,min=0"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	Features      []string              `json:"features"        validate:"omitempty,dive,max=50"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
	IsAvailable   *bool                 `json:"is_available"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL *string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		Name:          c.Name,
		Description:   c.Description,
		Type:          c.Type,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		Features:      c.Features,
		ImageURL:      imageURL,
		IsAvailable:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string                `db:"room_number"     json:"room_number"     validate:"omitempty,max=10"`
	Name          string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Description   *string               `db:"description"     json:"description"     validate:"omitempty,max=500"`
	Type          string                `db:"type"            json:"type"            validate:"omitempty,oneof=standard deluxe executive suite presidential"`
	PricePerNight *int64                `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	RoomNumber    string   `json:"room_number"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	Type          string   `json:"type"`
	PricePerNight int64    `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Features      []string `json:"features"`
	ImageURL      *string  `json:"image_url"`
	IsAvailable   bool     `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Name = model.Name
	r.Description = model.Description
	r.Type = model.Type
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Features = model.Features
	r.ImageURL = model.ImageURL
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
