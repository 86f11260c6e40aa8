package api

import (
	"context"
	"net/url"
)

// CitiesService covers the operating-city directory used by the location
// selector. The directory is public so the selector works regardless of
// session state.
type CitiesService struct {
	gateway *Gateway
}

// NewCitiesService describes the newcitiesservice operation and its observable behavior.
func NewCitiesService(g *Gateway) *CitiesService {
	return &CitiesService{gateway: g}
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or upstream responses fail.
func (s *CitiesService) List(ctx context.Context) ([]City, error) {
	var cities []City
	err := s.gateway.getPublicJSON(ctx, "/cities", &cities)
	return cities, err
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or upstream responses fail.
func (s *CitiesService) Get(ctx context.Context, id string) (City, error) {
	var city City
	err := s.gateway.getPublicJSON(ctx, "/cities/"+url.PathEscape(id), &city)
	return city, err
}
