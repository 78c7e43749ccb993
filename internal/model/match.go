package model

import "time"

// Match statuses.
const (
	MatchUpcoming  = "upcoming"
	MatchOngoing   = "ongoing"
	MatchCompleted = "completed"
	MatchCancelled = "cancelled"
)

// Match represents a scheduled cricket match at a stadium.  Only
// seats belonging to the match's stadium are eligible for
// match_seats rows.
//
// Fields:
//  ID          – primary key identifier.
//  StadiumID   – stadium hosting the match.
//  TeamA       – first team name.
//  TeamB       – second team name.
//  MatchDate   – when the match takes place (UTC).
//  Description – optional free text.
//  Status      – upcoming | ongoing | completed | cancelled.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Match struct {
	ID          uint64    `json:"id"`                    // matches.id
	StadiumID   uint64    `json:"stadium_id"`            // matches.stadium_id
	TeamA       string    `json:"team_a"`                // matches.team_a
	TeamB       string    `json:"team_b"`                // matches.team_b
	MatchDate   time.Time `json:"match_date"`            // matches.match_date
	Description *string   `json:"description,omitempty"` // matches.description (nullable)
	Status      string    `json:"status"`                // matches.status
	CreatedAt   time.Time `json:"created_at"`            // matches.created_at
	UpdatedAt   time.Time `json:"updated_at"`            // matches.updated_at
}

// MatchWithStadium is a match joined with its stadium's name and
// location, used by fan-facing detail views.
type MatchWithStadium struct {
	Match
	StadiumName     string `json:"stadium_name"`     // stadiums.name
	StadiumLocation string `json:"stadium_location"` // stadiums.location
}

// ValidMatchStatus reports whether s is an allowed match status.
func ValidMatchStatus(s string) bool {
	switch s {
	case MatchUpcoming, MatchOngoing, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}
