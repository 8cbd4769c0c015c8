package dto

import (
	"lux/internal/domains/payment/model"
	"lux/shared"
	gDto "lux/shared/dto"
	gModel "lux/shared/model"
	"lux/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentAccountRequest struct {
	BankName      string `json:"bank_name"      validate:"required,max=100"`
	AccountName   string `json:"account_name"   validate:"required,max=100"`
	AccountNumber string `json:"account_number" validate:"required,max=50"`
	IsActive      *bool  `json:"is_active"      validate:"omitempty"`
}

func (c *CreatePaymentAccountRequest) ToModel(user string) model.PaymentAccount {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.PaymentAccount{
		ID:            uuid.NewString(),
		BankName:      c.BankName,
		AccountName:   c.AccountName,
		AccountNumber: c.AccountNumber,
		IsActive:      isActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentAccountRequest struct {
	BankName      string `db:"bank_name"      json:"bank_name"      validate:"omitempty,max=100"`
	AccountName   string `db:"account_name"   json:"account_name"   validate:"omitempty,max=100"`
	AccountNumber string `db:"account_number" json:"account_number" validate:"omitempty,max=50"`
	IsActive      *bool  `db:"is_active"      json:"is_active"      validate:"omitempty"`
}

type PaymentAccountResponse struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IsActive      bool   `json:"is_active"`
	gDto.Metadata
}

func (r *PaymentAccountResponse) FromModel(model model.PaymentAccount) {
	r.ID = model.ID
	r.BankName = model.BankName
	r.AccountName = model.AccountName
	r.AccountNumber = model.AccountNumber
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentAccountsResponse struct {
	Accounts  []PaymentAccountResponse `json:"accounts"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetPaymentAccountsResponse) FromModels(models []model.PaymentAccount, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accounts = make([]PaymentAccountResponse, len(models))
	for i, mod := range models {
		r.Accounts[i].FromModel(mod)
	}
}
