package dto_test

import (
	"testing"

	"lux/shared/dto"
	"lux/shared/validator"
)

func TestFilter_GetWhereClause_IEq(t *testing.T) {
	filter := dto.Filter{
		Field:    "reference_number",
		Value:    "lux-abc123-7f2k",
		Operator: dto.FilterOperatorIEq,
		Table:    "bookings",
	}

	clause, args := filter.GetWhereClause()

	expected := "LOWER(bookings.reference_number) = LOWER(:reference_number)"
	if clause != expected {
		t.Errorf("expected clause %q, got %q", expected, clause)
	}

	if args["reference_number"] != "lux-abc123-7f2k" {
		t.Errorf("expected arg to be the raw value, got %v", args["reference_number"])
	}
}

func TestFilter_OperatorValidation(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		wantErr  bool
	}{
		{"eq is valid", dto.FilterOperatorEq, false},
		{"ieq is valid", dto.FilterOperatorIEq, false},
		{"in is valid", dto.FilterOperatorIn, false},
		{"greater_eq is valid", dto.FilterOperatorGreaterEq, false},
		{"unknown operator is rejected", "contains", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := dto.Filter{
				Field:    "booking_status",
				Value:    "pending",
				Operator: tt.operator,
			}

			err := validator.ValidateStruct(&filter)

			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
