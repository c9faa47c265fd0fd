package types

import "time"

// Location is a nullable coordinate pair on the profile document. It is
// set by a separate flow and never touched by the identity upsert.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpsertProfileRequest carries the identity fields merged into the
// profile document on every sign-in.
type UpsertProfileRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// ProfileResponse is the document shape returned to the client.
type ProfileResponse struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	CreatedAt   time.Time `json:"createdAt"`
	Location    *Location `json:"location"`
}
