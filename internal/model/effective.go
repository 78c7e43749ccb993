package model

// EffectiveSeat is one entry of a match's seat map: a physical seat
// resolved against its (possibly missing) match_seats row.
// MatchSeatID is zero when no row has been persisted yet; such a
// seat cannot be booked until the pricer materializes it.
type EffectiveSeat struct {
	SeatID      uint64 `json:"seat_id"`
	MatchSeatID uint64 `json:"match_seat_id,omitempty"`
	RowLabel    string `json:"row_label"`
	SeatNumber  string `json:"seat_number"`
	PriceCents  uint32 `json:"price_cents"`
	Status      string `json:"status"`
}

// EffectiveSeatState resolves the displayed (price, status) for one
// seat in one match.  A persisted MatchSeat row wins outright; a seat
// without one falls back to the stand's base price and to its own
// static status.  Every read path goes through this resolver so no
// caller has to special-case "missing row".
func EffectiveSeatState(seatStatus string, basePriceCents uint32, ms *MatchSeat) (uint32, string) {
	if ms != nil {
		return ms.PriceCents, ms.Status
	}
	// Static seat statuses share names with the per-match ones, so the
	// fallback maps directly: blocked stays blocked, maintenance stays
	// maintenance, available means bookable at the base price.
	return basePriceCents, seatStatus
}
