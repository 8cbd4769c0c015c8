package dto

import (
	"time"

	"lux/internal/domains/announcement/model"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreateAnnouncementRequest struct {
	Title     string  `json:"title"      validate:"required,max=150"`
	Body      string  `json:"body"       validate:"required,max=2000"`
	Audience  string  `json:"audience"   validate:"required,oneof=public staff all"`
	IsActive  *bool   `json:"is_active"  validate:"omitempty"`
	ExpiresAt *string `json:"expires_at" validate:"omitempty"`
}

func (c *CreateAnnouncementRequest) ToModel(user string) (model.Announcement, error) {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	var expiresAt *time.Time

	if c.ExpiresAt != nil {
		parsed, err := time.Parse(constant.DateFormat, *c.ExpiresAt)
		if err != nil {
			return model.Announcement{}, err
		}

		expiresAt = &parsed
	}

	return model.Announcement{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Body:      c.Body,
		Audience:  c.Audience,
		IsActive:  isActive,
		ExpiresAt: expiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateAnnouncementRequest struct {
	Title    string `db:"title"     json:"title"     validate:"omitempty,max=150"`
	Body     string `db:"body"      json:"body"      validate:"omitempty,max=2000"`
	Audience string `db:"audience"  json:"audience"  validate:"omitempty,oneof=public staff all"`
	IsActive *bool  `db:"is_active" json:"is_active" validate:"omitempty"`
}

type AnnouncementResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Audience  string  `json:"audience"`
	IsActive  bool    `json:"is_active"`
	ExpiresAt *string `json:"expires_at"`
	gDto.Metadata
}

func (r *AnnouncementResponse) FromModel(model model.Announcement) {
	r.ID = model.ID
	r.Title = model.Title
	r.Body = model.Body
	r.Audience = model.Audience
	r.IsActive = model.IsActive

	if model.ExpiresAt != nil {
		expiresAt := model.ExpiresAt.Format(constant.DateFormat)
		r.ExpiresAt = &expiresAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetAnnouncementsResponse) FromModels(models []model.Announcement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Announcements = make([]AnnouncementResponse, len(models))
	for i, mod := range models {
		r.Announcements[i].FromModel(mod)
	}
}
