package api

import "time"

// Movie defines a public type used by the booking client APIs.
//
// Movie instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Movie struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Language    string `json:"language,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	PosterURL   string `json:"posterUrl,omitempty"`
}

// Theatre defines a public type used by the booking client APIs.
//
// Theatre instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Theatre struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

// Screen defines a public type used by the booking client APIs.
//
// Screen instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Screen struct {
	ID        string `json:"_id,omitempty"`
	TheatreID string `json:"theatre,omitempty"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity,omitempty"`
}

// Show defines a public type used by the booking client APIs.
//
// Show instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Show struct {
	ID        string    `json:"_id,omitempty"`
	MovieID   string    `json:"movie,omitempty"`
	TheatreID string    `json:"theatre,omitempty"`
	ScreenID  string    `json:"screen,omitempty"`
	City      string    `json:"city,omitempty"`
	StartTime time.Time `json:"startTime,omitempty"`
	Price     float64   `json:"price,omitempty"`
}

// Booking defines a public type used by the booking client APIs.
//
// Booking instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Booking struct {
	ID          string    `json:"_id,omitempty"`
	ShowID      string    `json:"show,omitempty"`
	SeatCount   int       `json:"seatCount,omitempty"`
	TotalAmount float64   `json:"totalAmount,omitempty"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// City defines a public type used by the booking client APIs.
//
// City instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type City struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// User is the backend's profile document, distinct from the session
// store's locally persisted profile.
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	City  string `json:"city,omitempty"`
}
