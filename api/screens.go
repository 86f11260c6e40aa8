package api

import (
	"context"
	"net/url"
)

// ScreensService covers screen CRUD, scoped by theatre.
type ScreensService struct {
	gateway *Gateway
}

// NewScreensService describes the newscreensservice operation and its observable behavior.
func NewScreensService(g *Gateway) *ScreensService {
	return &ScreensService{gateway: g}
}

// List describes the list operation and its observable behavior.
//
// List may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ScreensService) List(ctx context.Context) ([]Screen, error) {
	var screens []Screen
	err := s.gateway.getJSON(ctx, "/screens", &screens)
	return screens, err
}

// ByTheatre describes the bytheatre operation and its observable behavior.
//
// ByTheatre may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ScreensService) ByTheatre(ctx context.Context, theatreID string) ([]Screen, error) {
	var screens []Screen
	err := s.gateway.getJSON(ctx, "/screens/theatre/"+url.PathEscape(theatreID)+"/screens", &screens)
	return screens, err
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ScreensService) Create(ctx context.Context, screen Screen) (Screen, error) {
	var out Screen
	err := s.gateway.postJSON(ctx, "/screens/new", screen, &out)
	return out, err
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ScreensService) Update(ctx context.Context, id string, screen Screen) (Screen, error) {
	var out Screen
	err := s.gateway.putJSON(ctx, "/screens/"+url.PathEscape(id), screen, &out)
	return out, err
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or upstream responses fail.
func (s *ScreensService) Delete(ctx context.Context, id string) error {
	return s.gateway.deleteJSON(ctx, "/screens/"+url.PathEscape(id), nil)
}
