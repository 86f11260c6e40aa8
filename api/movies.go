package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// MoviesService covers the movie catalog, including the multipart
// create/update path used for poster uploads.
type MoviesService struct {
	gateway *Gateway
}

// NewMoviesService describes the newmoviesservice operation and its observable behavior.
func NewMoviesService(g *Gateway) *MoviesService {
	return &MoviesService{gateway: g}
}

// MovieUpload carries the form fields and optional poster image for the
// multipart movie endpoints.
type MovieUpload struct {
	Fields         map[string]string
	Poster         io.Reader
	PosterFilename string
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or upstream responses fail.
func (s *MoviesService) List(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	err := s.gateway.getJSON(ctx, "/movies", &movies)
	return movies, err
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or upstream responses fail.
func (s *MoviesService) Get(ctx context.Context, id string) (Movie, error) {
	var movie Movie
	err := s.gateway.getJSON(ctx, "/movies/"+url.PathEscape(id), &movie)
	return movie, err
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or upstream responses fail.
func (s *MoviesService) Create(ctx context.Context, upload MovieUpload) (Movie, error) {
	p, err := multipartPayload(upload.Fields, "poster", upload.PosterFilename, upload.Poster)
	if err != nil {
		return Movie{}, err
	}
	var movie Movie
	err = s.gateway.do(ctx, http.MethodPost, "/movies/new", p, &movie)
	return movie, err
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or upstream responses fail.
func (s *MoviesService) Update(ctx context.Context, id string, upload MovieUpload) (Movie, error) {
	p, err := multipartPayload(upload.Fields, "poster", upload.PosterFilename, upload.Poster)
	if err != nil {
		return Movie{}, err
	}
	var movie Movie
	err = s.gateway.do(ctx, http.MethodPut, "/movies/"+url.PathEscape(id), p, &movie)
	return movie, err
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or upstream responses fail.
func (s *MoviesService) Delete(ctx context.Context, id string) error {
	return s.gateway.deleteJSON(ctx, "/movies/"+url.PathEscape(id), nil)
}
