package dto

import (
	"lux/internal/domains/housekeeping/model"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	RoomID      string  `json:"room_id"     validate:"required,uuid"`
	RoomNumber  string  `json:"room_number" validate:"required,max=20"`
	Type        string  `json:"type"        validate:"required,oneof=cleaning maintenance inspection turnover"`
	Priority    string  `json:"priority"    validate:"required,oneof=low medium high urgent"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateTaskRequest) ToModel(user string) model.HousekeepingTask {
	return model.HousekeepingTask{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		RoomNumber:  c.RoomNumber,
		Type:        c.Type,
		Status:      constant.TaskStatusPending,
		Priority:    c.Priority,
		AssignedTo:  c.AssignedTo,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTaskRequest struct {
	Priority    string  `db:"priority"    json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo  *string `db:"assigned_to" json:"assigned_to" validate:"omitempty,max=100"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=500"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	RoomNumber  string  `json:"room_number"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	AssignedTo  *string `json:"assigned_to"`
	Description *string `json:"description"`
	CompletedAt *string `json:"completed_at"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(model model.HousekeepingTask) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Status = model.Status
	r.Priority = model.Priority
	r.AssignedTo = model.AssignedTo
	r.Description = model.Description

	if model.CompletedAt != nil {
		completed := model.CompletedAt.Format(constant.DateFormat)
		r.CompletedAt = &completed
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.HousekeepingTask, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
