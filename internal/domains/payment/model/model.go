package model

import "lux/shared/model"

const (
	TableName  = "payment_accounts"
	EntityName = "payment_account"

	FieldID            = "id"
	FieldBankName      = "bank_name"
	FieldAccountName   = "account_name"
	FieldAccountNumber = "account_number"
	FieldIsActive      = "is_active"
)

type PaymentAccount struct {
	ID            string `db:"id"`
	BankName      string `db:"bank_name"`
	AccountName   string `db:"account_name"`
	AccountNumber string `db:"account_number"`
	IsActive      bool   `db:"is_active"`
	model.Metadata
}
