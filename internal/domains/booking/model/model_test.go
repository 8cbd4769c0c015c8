package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lux/internal/domains/booking/model"
	"lux/shared/constant"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", constant.BookingStatusPending, constant.BookingStatusConfirmed, true},
		{"pending to cancelled", constant.BookingStatusPending, constant.BookingStatusCancelled, true},
		{"pending to completed", constant.BookingStatusPending, constant.BookingStatusCompleted, false},
		{"confirmed to completed", constant.BookingStatusConfirmed, constant.BookingStatusCompleted, true},
		{"confirmed to cancelled", constant.BookingStatusConfirmed, constant.BookingStatusCancelled, true},
		{"confirmed back to pending", constant.BookingStatusConfirmed, constant.BookingStatusPending, false},
		{"cancelled to confirmed", constant.BookingStatusCancelled, constant.BookingStatusConfirmed, false},
		{"completed to cancelled", constant.BookingStatusCompleted, constant.BookingStatusCancelled, false},
		{"resaving the same status", constant.BookingStatusConfirmed, constant.BookingStatusConfirmed, true},
		{"unknown status", "limbo", "limbo", false},
		{"unknown target", constant.BookingStatusPending, "limbo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, model.IsTerminal(constant.BookingStatusPending))
	assert.False(t, model.IsTerminal(constant.BookingStatusConfirmed))
	assert.True(t, model.IsTerminal(constant.BookingStatusCancelled))
	assert.True(t, model.IsTerminal(constant.BookingStatusCompleted))
}
