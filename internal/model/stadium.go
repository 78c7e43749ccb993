package model

import "time"

// Stadium represents a cricket venue.  A stadium owns a set of
// stands, each with its own pricing category.  This struct
// corresponds to a row in the `stadiums` table.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – venue name.
//  Location    – city or address of the venue.
//  Capacity    – total declared capacity.
//  Description – optional free text about the venue.
//  ImageURL    – optional image for listing pages.
//  CreatedAt   – timestamp when the stadium was created.
//  UpdatedAt   – timestamp of last update.
type Stadium struct {
	ID          uint64    `json:"id"`                    // stadiums.id
	Name        string    `json:"name"`                  // stadiums.name
	Location    string    `json:"location"`              // stadiums.location
	Capacity    uint32    `json:"capacity"`              // stadiums.capacity
	Description *string   `json:"description,omitempty"` // stadiums.description (nullable)
	ImageURL    *string   `json:"image_url,omitempty"`   // stadiums.image_url (nullable)
	CreatedAt   time.Time `json:"created_at"`            // stadiums.created_at
	UpdatedAt   time.Time `json:"updated_at"`            // stadiums.updated_at
}
