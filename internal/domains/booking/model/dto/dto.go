package dto

import (
	"mime/multipart"
	"time"

	"lux/internal/domains/booking/model"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID          string  `json:"room_id"          validate:"required"`
	GuestName       string  `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string  `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string  `json:"guest_phone"      validate:"required,max=20"`
	CheckInDate     string  `json:"check_in_date"    validate:"required"`
	CheckOutDate    string  `json:"check_out_date"   validate:"required"`
	TotalAmount     int64   `json:"total_amount"     validate:"required,min=0"`
	PaymentMethod   *string `json:"payment_method"   validate:"omitempty,max=50"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user, referenceNumber string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateFormatDateOnly, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DateFormatDateOnly, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:              uuid.NewString(),
		ReferenceNumber: referenceNumber,
		RoomID:          c.RoomID,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		TotalAmount:     c.TotalAmount,
		BookingStatus:   constant.BookingStatusPending,
		PaymentStatus:   constant.PaymentStatusPending,
		PaymentMethod:   c.PaymentMethod,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	GuestName       string  `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      string  `db:"guest_email"      json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string  `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
	PaymentMethod   *string `db:"payment_method"   json:"payment_method"   validate:"omitempty,max=50"`
	SpecialRequests *string `db:"special_requests" json:"special_requests" validate:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	BookingStatus string `json:"booking_status" validate:"required,oneof=pending confirmed cancelled completed"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending confirmed"`
}

type PaymentProofRequest struct {
	Proof     *multipart.FileHeader `json:"proof" validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	ProofFile multipart.File        `json:"-"`
}

type CreateBookingResponse struct {
	ID              string `json:"id"`
	ReferenceNumber string `json:"reference_number"`
	BookingStatus   string `json:"booking_status"`
	PaymentStatus   string `json:"payment_status"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	ReferenceNumber string  `json:"reference_number"`
	RoomID          string  `json:"room_id"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	TotalAmount     int64   `json:"total_amount"`
	BookingStatus   string  `json:"booking_status"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentMethod   *string `json:"payment_method"`
	SpecialRequests *string `json:"special_requests"`
	PaymentProofURL *string `json:"payment_proof_url"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ReferenceNumber = model.ReferenceNumber
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckInDate = model.CheckInDate.Format(constant.DateFormatDateOnly)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateFormatDateOnly)
	r.TotalAmount = model.TotalAmount
	r.BookingStatus = model.BookingStatus
	r.PaymentStatus = model.PaymentStatus
	r.PaymentMethod = model.PaymentMethod
	r.SpecialRequests = model.SpecialRequests
	r.PaymentProofURL = model.PaymentProofURL
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
