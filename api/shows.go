package api

import (
	"context"
	"net/url"
)

// ShowsService covers show listings, scoped by movie and operating city.
type ShowsService struct {
	gateway *Gateway
}

// NewShowsService describes the newshowsservice operation and its observable behavior.
func NewShowsService(g *Gateway) *ShowsService {
	return &ShowsService{gateway: g}
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ShowsService) List(ctx context.Context) ([]Show, error) {
	var shows []Show
	err := s.gateway.getJSON(ctx, "/shows", &shows)
	return shows, err
}

// MoviesInCity returns the movies that have at least one show in city.
func (s *ShowsService) MoviesInCity(ctx context.Context, city string) ([]Movie, error) {
	var movies []Movie
	err := s.gateway.getJSON(ctx, "/shows/movies/"+url.PathEscape(city), &movies)
	return movies, err
}

// ByMovie returns the shows of one movie within city.
func (s *ShowsService) ByMovie(ctx context.Context, movieID, city string) ([]Show, error) {
	var shows []Show
	err := s.gateway.getJSON(ctx, "/shows/movie/"+url.PathEscape(movieID)+"/city/"+url.PathEscape(city), &shows)
	return shows, err
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ShowsService) Create(ctx context.Context, show Show) (Show, error) {
	var out Show
	err := s.gateway.postJSON(ctx, "/shows/new", show, &out)
	return out, err
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ShowsService) Update(ctx context.Context, id string, show Show) (Show, error) {
	var out Show
	err := s.gateway.putJSON(ctx, "/shows/"+url.PathEscape(id), show, &out)
	return out, err
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ShowsService) Delete(ctx context.Context, id string) error {
	return s.gateway.deleteJSON(ctx, "/shows/"+url.PathEscape(id), nil)
}
