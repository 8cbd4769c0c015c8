package dto

import (
	"mime/multipart"

	"lux/internal/domains/guest/model"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Email   *string `json:"email"   validate:"omitempty,email,max=100"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	Notes   *string `json:"notes"   validate:"omitempty,max=500"`
}

func (c *CreateGuestRequest) ToModel(user string) model.GuestProfile {
	return model.GuestProfile{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Notes:   c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name    string  `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Email   *string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Phone   *string `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Address *string `db:"address" json:"address" validate:"omitempty,max=255"`
	Notes   *string `db:"notes"   json:"notes"   validate:"omitempty,max=500"`
}

type CreateReceiptRequest struct {
	Description string                `json:"description" validate:"required,max=255"`
	Amount      int64                 `json:"amount"      validate:"required,min=0"`
	File        *multipart.FileHeader `json:"file"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	FileData    multipart.File        `json:"-"`
}

func (c *CreateReceiptRequest) ToModel(user, guestID string, url *string) model.GuestReceipt {
	return model.GuestReceipt{
		ID:          uuid.NewString(),
		GuestID:     guestID,
		Description: c.Description,
		Amount:      c.Amount,
		URL:         url,
		IssuedAt:    timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type GuestResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.GuestProfile) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type ReceiptResponse struct {
	ID          string  `json:"id"`
	GuestID     string  `json:"guest_id"`
	Description string  `json:"description"`
	Amount      int64   `json:"amount"`
	URL         *string `json:"url"`
	IssuedAt    string  `json:"issued_at"`
}

func (r *ReceiptResponse) FromModel(model model.GuestReceipt) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.Description = model.Description
	r.Amount = model.Amount
	r.URL = model.URL
	r.IssuedAt = model.IssuedAt.Format(constant.DateFormat)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.GuestProfile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

type GetReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

func (r *GetReceiptsResponse) FromModels(models []model.GuestReceipt) {
	r.Receipts = make([]ReceiptResponse, len(models))
	for i, mod := range models {
		r.Receipts[i].FromModel(mod)
	}
}
