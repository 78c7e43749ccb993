package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveSeatStateFallsBackToBasePrice(t *testing.T) {
	price, status := EffectiveSeatState(SeatAvailable, 5000, nil)
	assert.Equal(t, uint32(5000), price)
	assert.Equal(t, "available", status)
}

func TestEffectiveSeatStateKeepsStaticStatusWithoutRow(t *testing.T) {
	price, status := EffectiveSeatState(SeatMaintenance, 5000, nil)
	assert.Equal(t, uint32(5000), price)
	assert.Equal(t, "maintenance", status)
}

func TestEffectiveSeatStatePersistedRowWins(t *testing.T) {
	ms := &MatchSeat{PriceCents: 7500, Status: MatchSeatBooked}
	// The persisted row overrides both the base price and the static
	// status, even when the physical seat says available.
	price, status := EffectiveSeatState(SeatAvailable, 5000, ms)
	assert.Equal(t, uint32(7500), price)
	assert.Equal(t, "booked", status)
}
