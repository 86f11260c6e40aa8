package api

import (
	"context"
	"net/url"
)

// TheatresService covers theatre CRUD for the admin back office.
type TheatresService struct {
	gateway *Gateway
}

// NewTheatresService describes the newtheatresservice operation and its observable behavior.
func NewTheatresService(g *Gateway) *TheatresService {
	return &TheatresService{gateway: g}
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or upstream responses fail.
func (s *TheatresService) List(ctx context.Context) ([]Theatre, error) {
	var theatres []Theatre
	err := s.gateway.getJSON(ctx, "/theatres", &theatres)
	return theatres, err
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or upstream responses fail.
func (s *TheatresService) Get(ctx context.Context, id string) (Theatre, error) {
	var theatre Theatre
	err := s.gateway.getJSON(ctx, "/theatres/"+url.PathEscape(id), &theatre)
	return theatre, err
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or upstream responses fail.
func (s *TheatresService) Create(ctx context.Context, theatre Theatre) (Theatre, error) {
	var out Theatre
	err := s.gateway.postJSON(ctx, "/theatres/new", theatre, &out)
	return out, err
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or upstream responses fail.
func (s *TheatresService) Update(ctx context.Context, id string, theatre Theatre) (Theatre, error) {
	var out Theatre
	err := s.gateway.putJSON(ctx, "/theatres/"+url.PathEscape(id), theatre, &out)
	return out, err
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or upstream responses fail.
func (s *TheatresService) Delete(ctx context.Context, id string) error {
	return s.gateway.deleteJSON(ctx, "/theatres/"+url.PathEscape(id), nil)
}
