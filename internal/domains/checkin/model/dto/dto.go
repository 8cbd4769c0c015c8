package dto

import (
	"lux/internal/domains/checkin/model"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreateCheckInRequest struct {
	BookingID  *string `json:"booking_id"  validate:"omitempty,uuid"`
	GuestName  string  `json:"guest_name"  validate:"required,max=100"`
	RoomID     string  `json:"room_id"     validate:"required,uuid"`
	RoomNumber string  `json:"room_number" validate:"required,max=20"`
	Notes      *string `json:"notes"       validate:"omitempty,max=500"`
}

func (c *CreateCheckInRequest) ToModel(user string) model.CheckInRecord {
	return model.CheckInRecord{
		ID:         uuid.NewString(),
		BookingID:  c.BookingID,
		GuestName:  c.GuestName,
		RoomID:     c.RoomID,
		RoomNumber: c.RoomNumber,
		Status:     constant.CheckInStatusExpected,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCheckInRequest struct {
	GuestName string  `db:"guest_name" json:"guest_name" validate:"omitempty,max=100"`
	Notes     *string `db:"notes"      json:"notes"      validate:"omitempty,max=500"`
}

type UpdateCheckInStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=expected checked_in checked_out no_show"`
}

type CheckInResponse struct {
	ID           string  `json:"id"`
	BookingID    *string `json:"booking_id"`
	GuestName    string  `json:"guest_name"`
	RoomID       string  `json:"room_id"`
	RoomNumber   string  `json:"room_number"`
	Status       string  `json:"status"`
	CheckedInAt  *string `json:"checked_in_at"`
	CheckedOutAt *string `json:"checked_out_at"`
	Notes        *string `json:"notes"`
	gDto.Metadata
}

func (r *CheckInResponse) FromModel(model model.CheckInRecord) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.GuestName = model.GuestName
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.Status = model.Status
	r.Notes = model.Notes

	if model.CheckedInAt != nil {
		checkedIn := model.CheckedInAt.Format(constant.DateFormat)
		r.CheckedInAt = &checkedIn
	}

	if model.CheckedOutAt != nil {
		checkedOut := model.CheckedOutAt.Format(constant.DateFormat)
		r.CheckedOutAt = &checkedOut
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetCheckInsResponse struct {
	CheckIns  []CheckInResponse `json:"check_ins"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCheckInsResponse) FromModels(models []model.CheckInRecord, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CheckIns = make([]CheckInResponse, len(models))
	for i, mod := range models {
		r.CheckIns[i].FromModel(mod)
	}
}
