package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

func TestBuildSeatMapGroupsByRow(t *testing.T) {
	seats := []model.EffectiveSeat{
		{SeatID: 1, RowLabel: "A1", SeatNumber: "1", PriceCents: 5000, Status: "available"},
		{SeatID: 2, RowLabel: "A1", SeatNumber: "2", PriceCents: 5000, Status: "booked"},
		{SeatID: 3, RowLabel: "A2", SeatNumber: "1", PriceCents: 5000, Status: "available"},
	}
	rows := buildSeatMap(seats)
	require.Len(t, rows, 2)
	assert.Equal(t, "A1", rows[0].Row)
	require.Len(t, rows[0].Seats, 2)
	assert.Equal(t, "booked", rows[0].Seats[1].Status)
	assert.Equal(t, "A2", rows[1].Row)
	require.Len(t, rows[1].Seats, 1)
}

func TestBuildSeatMapEmpty(t *testing.T) {
	assert.Empty(t, buildSeatMap(nil))
}
