package model

import (
	"time"

	"lux/shared/model"
)

const (
	TableName  = "announcements"
	EntityName = "announcement"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldAudience  = "audience"
	FieldIsActive  = "is_active"
	FieldExpiresAt = "expires_at"
)

type Announcement struct {
	ID        string     `db:"id"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	Audience  string     `db:"audience"`
	IsActive  bool       `db:"is_active"`
	ExpiresAt *time.Time `db:"expires_at"`
	model.Metadata
}
