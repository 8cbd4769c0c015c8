package model

import (
	"time"

	"lux/shared/model"
)

const (
	TableName  = "guest_profiles"
	EntityName = "guest_profile"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldAddress = "address"
	FieldNotes   = "notes"
)

const (
	ReceiptTableName  = "guest_receipts"
	ReceiptEntityName = "guest_receipt"

	ReceiptFieldID          = "id"
	ReceiptFieldGuestID     = "guest_id"
	ReceiptFieldDescription = "description"
	ReceiptFieldAmount      = "amount"
	ReceiptFieldURL         = "url"
	ReceiptFieldIssuedAt    = "issued_at"
)

type GuestProfile struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Email   *string `db:"email"`
	Phone   *string `db:"phone"`
	Address *string `db:"address"`
	Notes   *string `db:"notes"`
	model.Metadata
}

type GuestReceipt struct {
	ID          string    `db:"id"`
	GuestID     string    `db:"guest_id"`
	Description string    `db:"description"`
	Amount      int64     `db:"amount"`
	URL         *string   `db:"url"`
	IssuedAt    time.Time `db:"issued_at"`
	model.Metadata
}
