package dto

import (
	"mime/multipart"
	"time"

	"lux/internal/domains/staff/model"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name       string  `json:"name"       validate:"required,max=100"`
	Email      string  `json:"email"      validate:"required,email,max=100"`
	Phone      *string `json:"phone"      validate:"omitempty,max=20"`
	Role       string  `json:"role"       validate:"required,max=50"`
	Department *string `json:"department" validate:"omitempty,max=50"`
	Shift      string  `json:"shift"      validate:"required,oneof=morning afternoon night"`
	Salary     *int64  `json:"salary"     validate:"omitempty,min=0"`
	HiredAt    *string `json:"hired_at"   validate:"omitempty,datetime=2006-01-02"`
	Password   string  `json:"password"   validate:"required,min=8,max=72"`
}

func (c *CreateStaffRequest) ToModel(user, staffCode, hashedPassword string) model.StaffMember {
	var hiredAt *time.Time

	if c.HiredAt != nil {
		if parsed, err := time.Parse(constant.DateFormatDateOnly, *c.HiredAt); err == nil {
			hiredAt = &parsed
		}
	}

	return model.StaffMember{
		ID:         uuid.NewString(),
		StaffCode:  staffCode,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Role:       c.Role,
		Department: c.Department,
		Shift:      c.Shift,
		Status:     constant.StaffStatusActive,
		Salary:     c.Salary,
		HiredAt:    hiredAt,
		Password:   hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	Name       string  `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Email      string  `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Phone      *string `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
	Role       string  `db:"role"       json:"role"       validate:"omitempty,max=50"`
	Department *string `db:"department" json:"department" validate:"omitempty,max=50"`
	Shift      string  `db:"shift"      json:"shift"      validate:"omitempty,oneof=morning afternoon night"`
	Status     string  `db:"status"     json:"status"     validate:"omitempty,oneof=active inactive on_leave"`
	Salary     *int64  `db:"salary"     json:"salary"     validate:"omitempty,min=0"`
}

type UploadDocumentRequest struct {
	Name     string                `json:"name" validate:"required,max=100"`
	File     *multipart.FileHeader `json:"file" validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	FileData multipart.File        `json:"-"`
}

type StaffResponse struct {
	ID         string  `json:"id"`
	StaffCode  string  `json:"staff_code"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Role       string  `json:"role"`
	Department *string `json:"department"`
	Shift      string  `json:"shift"`
	Status     string  `json:"status"`
	Salary     *int64  `json:"salary"`
	HiredAt    *string `json:"hired_at"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.StaffMember) {
	r.ID = model.ID
	r.StaffCode = model.StaffCode
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.Department = model.Department
	r.Shift = model.Shift
	r.Status = model.Status
	r.Salary = model.Salary

	if model.HiredAt != nil {
		hiredAt := model.HiredAt.Format(constant.DateFormatDateOnly)
		r.HiredAt = &hiredAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type ResetCodeResponse struct {
	ID        string `json:"id"`
	StaffCode string `json:"staff_code"`
}

type DocumentResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

func (r *DocumentResponse) FromModel(model model.StaffDocument) {
	r.ID = model.ID
	r.StaffID = model.StaffID
	r.Name = model.Name
	r.URL = model.URL
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.StaffMember, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

func (r *GetDocumentsResponse) FromModels(models []model.StaffDocument) {
	r.Documents = make([]DocumentResponse, len(models))
	for i, mod := range models {
		r.Documents[i].FromModel(mod)
	}
}
