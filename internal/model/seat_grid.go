package model

import (
	"errors"
	"strconv"
)

// ErrInvalidGrid is returned by BuildSeatGrid when the requested
// bounds cannot describe a rectangular block of seats.
var ErrInvalidGrid = errors.New("invalid seat grid bounds")

// SeatGridSpec describes a rectangular block of seats for bulk
// generation: rows startRow..endRow inclusive, each with
// seatsPerRow seats numbered from 1.  The row label is the prefix
// concatenated with the numeric row index ("A" + 3 -> "A3").
type SeatGridSpec struct {
	StandID     uint64
	RowPrefix   string
	StartRow    int
	EndRow      int
	SeatsPerRow int
	Status      string
}

// BuildSeatGrid expands a SeatGridSpec into concrete Seat values.
// It rejects inverted row bounds (start > end) and non-positive
// seats-per-row before producing anything, so a bad request never
// reaches the store.  The caller is responsible for persisting the
// result (in batches, see the seat repository).
func BuildSeatGrid(spec SeatGridSpec) ([]Seat, error) {
	if spec.StartRow > spec.EndRow || spec.SeatsPerRow <= 0 {
		return nil, ErrInvalidGrid
	}
	if !ValidSeatStatus(spec.Status) {
		return nil, ErrInvalidGrid
	}
	seats := make([]Seat, 0, (spec.EndRow-spec.StartRow+1)*spec.SeatsPerRow)
	for row := spec.StartRow; row <= spec.EndRow; row++ {
		rowLabel := spec.RowPrefix + strconv.Itoa(row)
		for seat := 1; seat <= spec.SeatsPerRow; seat++ {
			seats = append(seats, Seat{
				StandID:    spec.StandID,
				RowLabel:   rowLabel,
				SeatNumber: strconv.Itoa(seat),
				Status:     spec.Status,
			})
		}
	}
	return seats, nil
}
