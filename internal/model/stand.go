package model

import "time"

// Stand represents a seating section of a stadium.  Every stand
// belongs to exactly one stadium and carries the base price that
// seats in the stand default to when a match has no per-seat
// override.  This struct corresponds to a row in the `stands` table.
//
// Fields:
//  ID             – primary key identifier.
//  StadiumID      – owning stadium.
//  Name           – section name, unique per stadium in practice.
//  Category       – pricing category label (e.g. "Premium", "General").
//  Capacity       – declared seat capacity of the stand.
//  BasePriceCents – default seat price in cents (never negative).
//  Description    – optional free text.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Stand struct {
	ID             uint64    `json:"id"`                    // stands.id
	StadiumID      uint64    `json:"stadium_id"`            // stands.stadium_id
	Name           string    `json:"name"`                  // stands.name
	Category       string    `json:"category"`              // stands.category
	Capacity       uint32    `json:"capacity"`              // stands.capacity
	BasePriceCents uint32    `json:"base_price_cents"`      // stands.base_price_cents
	Description    *string   `json:"description,omitempty"` // stands.description (nullable)
	CreatedAt      time.Time `json:"created_at"`            // stands.created_at
	UpdatedAt      time.Time `json:"updated_at"`            // stands.updated_at
}
