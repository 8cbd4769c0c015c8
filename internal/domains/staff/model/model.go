package model

import (
	"time"

	"lux/shared/model"
)

const (
	TableName  = "staff_members"
	EntityName = "staff_member"

	FieldID         = "id"
	FieldStaffCode  = "staff_code"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldRole       = "role"
	FieldDepartment = "department"
	FieldShift      = "shift"
	FieldStatus     = "status"
	FieldSalary     = "salary"
	FieldHiredAt    = "hired_at"
	FieldPassword   = "password"
)

const (
	DocumentTableName  = "staff_documents"
	DocumentEntityName = "staff_document"

	DocumentFieldID      = "id"
	DocumentFieldStaffID = "staff_id"
	DocumentFieldName    = "name"
	DocumentFieldURL     = "url"
)

type StaffMember struct {
	ID         string     `db:"id"`
	StaffCode  string     `db:"staff_code"`
	Name       string     `db:"name"`
	Email      string     `db:"email"`
	Phone      *string    `db:"phone"`
	Role       string     `db:"role"`
	Department *string    `db:"department"`
	Shift      string     `db:"shift"`
	Status     string     `db:"status"`
	Salary     *int64     `db:"salary"`
	HiredAt    *time.Time `db:"hired_at"`
	Password   string     `db:"password"`
	model.Metadata
}

type StaffDocument struct {
	ID      string `db:"id"`
	StaffID string `db:"staff_id"`
	Name    string `db:"name"`
	URL     string `db:"url"`
	model.Metadata
}
