package api

import (
	"context"
	"net/url"
)

// BookingsService covers seat-count bookings and their lifecycle.
type BookingsService struct {
	gateway *Gateway
}

// NewBookingsService describes the newbookingsservice operation and its observable behavior.
func NewBookingsService(g *Gateway) *BookingsService {
	return &BookingsService{gateway: g}
}

// BookingRequest defines a public type used by the booking client APIs.
//
// BookingRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type BookingRequest struct {
	ShowID    string `json:"show"`
	SeatCount int    `json:"seatCount"`
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or upstream responses fail.
func (s *BookingsService) Create(ctx context.Context, req BookingRequest) (Booking, error) {
	var booking Booking
	err := s.gateway.postJSON(ctx, "/bookings", req, &booking)
	return booking, err
}

// Mine returns the caller's bookings.
func (s *BookingsService) Mine(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := s.gateway.getJSON(ctx, "/bookings/my-bookings", &bookings)
	return bookings, err
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or upstream responses fail.
func (s *BookingsService) Get(ctx context.Context, id string) (Booking, error) {
	var booking Booking
	err := s.gateway.getJSON(ctx, "/bookings/"+url.PathEscape(id), &booking)
	return booking, err
}

// Cancel describes the cancel operation and its observable behavior.
//
// Cancel may return an error when input validation, dependency calls, or upstream responses fail.
func (s *BookingsService) Cancel(ctx context.Context, id string) (Booking, error) {
	var booking Booking
	err := s.gateway.putEmpty(ctx, "/bookings/"+url.PathEscape(id)+"/cancel", &booking)
	return booking, err
}
