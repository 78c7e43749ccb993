package handler

import (
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

// AdminHandler bundles the repositories admin endpoints manipulate:
// venue topology, fixtures, per-match pricing and the booking ledger.
type AdminHandler struct {
	StadiumRepo   *repository.StadiumRepo
	StandRepo     *repository.StandRepo
	SeatRepo      *repository.SeatRepo
	MatchRepo     *repository.MatchRepo
	MatchSeatRepo *repository.MatchSeatRepo
	BookingRepo   *repository.BookingRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil; the wiring in main is static, so a nil here is a
// programming error worth failing loudly on.
func NewAdminHandler(stadiumRepo *repository.StadiumRepo, standRepo *repository.StandRepo, seatRepo *repository.SeatRepo, matchRepo *repository.MatchRepo, matchSeatRepo *repository.MatchSeatRepo, bookingRepo *repository.BookingRepo) *AdminHandler {
	if stadiumRepo == nil || standRepo == nil || seatRepo == nil || matchRepo == nil || matchSeatRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		StadiumRepo:   stadiumRepo,
		StandRepo:     standRepo,
		SeatRepo:      seatRepo,
		MatchRepo:     matchRepo,
		MatchSeatRepo: matchSeatRepo,
		BookingRepo:   bookingRepo,
	}
}
