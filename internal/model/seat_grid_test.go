package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeatGrid(t *testing.T) {
	seats, err := BuildSeatGrid(SeatGridSpec{
		StandID:     42,
		RowPrefix:   "A",
		StartRow:    1,
		EndRow:      2,
		SeatsPerRow: 3,
		Status:      SeatAvailable,
	})
	require.NoError(t, err)
	require.Len(t, seats, 6)

	assert.Equal(t, "A1", seats[0].RowLabel)
	assert.Equal(t, "1", seats[0].SeatNumber)
	assert.Equal(t, "A1", seats[2].RowLabel)
	assert.Equal(t, "3", seats[2].SeatNumber)
	assert.Equal(t, "A2", seats[3].RowLabel)
	assert.Equal(t, "1", seats[3].SeatNumber)
	for _, s := range seats {
		assert.Equal(t, uint64(42), s.StandID)
		assert.Equal(t, SeatAvailable, s.Status)
	}
}

func TestBuildSeatGridSingleRow(t *testing.T) {
	seats, err := BuildSeatGrid(SeatGridSpec{
		StandID:     1,
		RowPrefix:   "VIP",
		StartRow:    5,
		EndRow:      5,
		SeatsPerRow: 2,
		Status:      SeatBlocked,
	})
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, "VIP5", seats[0].RowLabel)
	assert.Equal(t, "VIP5", seats[1].RowLabel)
}

func TestBuildSeatGridRejectsBadBounds(t *testing.T) {
	cases := []struct {
		name string
		spec SeatGridSpec
	}{
		{"inverted rows", SeatGridSpec{StartRow: 3, EndRow: 1, SeatsPerRow: 4, Status: SeatAvailable}},
		{"zero seats per row", SeatGridSpec{StartRow: 1, EndRow: 2, SeatsPerRow: 0, Status: SeatAvailable}},
		{"negative seats per row", SeatGridSpec{StartRow: 1, EndRow: 2, SeatsPerRow: -1, Status: SeatAvailable}},
		{"bad status", SeatGridSpec{StartRow: 1, EndRow: 2, SeatsPerRow: 2, Status: "booked"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seats, err := BuildSeatGrid(tc.spec)
			assert.ErrorIs(t, err, ErrInvalidGrid)
			assert.Nil(t, seats)
		})
	}
}
