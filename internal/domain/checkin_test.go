package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckedInToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	assert.False(t, CheckedInToday(nil, now))

	yesterday := []CheckIn{{CheckedInAt: now.Add(-24 * time.Hour)}}
	assert.False(t, CheckedInToday(yesterday, now))

	sameDay := []CheckIn{
		{CheckedInAt: now.Add(-24 * time.Hour)},
		{CheckedInAt: time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)},
	}
	assert.True(t, CheckedInToday(sameDay, now))
}

func TestCheckedInToday_UsesCalendarDateNotWindow(t *testing.T) {
	// 23:50 yesterday is within 24h of 00:05 today but is not "today".
	now := time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC)
	events := []CheckIn{{CheckedInAt: time.Date(2025, 6, 9, 23, 50, 0, 0, time.UTC)}}

	assert.False(t, CheckedInToday(events, now))
}

func TestValidRegistrationStatus(t *testing.T) {
	assert.True(t, ValidRegistrationStatus(RegistrationStatusPending))
	assert.True(t, ValidRegistrationStatus(RegistrationStatusApproved))
	assert.True(t, ValidRegistrationStatus(RegistrationStatusRejected))
	assert.False(t, ValidRegistrationStatus("ARCHIVED"))
	assert.False(t, ValidRegistrationStatus(""))
}

func TestValidTicketType(t *testing.T) {
	for _, tt := range []TicketType{
		TicketTypeFull, TicketTypeFree, TicketTypeVVIP, TicketTypeVIP,
		TicketTypePass, TicketTypeOneDay, TicketTypeTwoDay,
	} {
		assert.True(t, ValidTicketType(tt))
	}
	assert.False(t, ValidTicketType("PLATINUM"))
}
