package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

func ownerQuery(userID int64) url.Values {
	return url.Values{"userId": []string{strconv.FormatInt(userID, 10)}}
}

func (c *HTTPClient) ListNotes(ctx context.Context, token string, userID int64) ([]models.Note, error) {
	var out []models.Note
	if err := c.doJSON(ctx, http.MethodGet, idPath("/notes/user/%d", userID), token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, token string, userID int64, in models.NoteInput) (*models.Note, error) {
	r, err := c.jsonRequest(http.MethodPost, "/notes", token, in)
	if err != nil {
		return nil, err
	}
	r.query = ownerQuery(userID)

	var out models.Note
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, token string, userID, noteID int64, in models.NoteInput) (*models.Note, error) {
	r, err := c.jsonRequest(http.MethodPut, idPath("/notes/%d", noteID), token, in)
	if err != nil {
		return nil, err
	}
	r.query = ownerQuery(userID)

	var out models.Note
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, token string, userID, noteID int64) error {
	r := request{method: http.MethodDelete, path: idPath("/notes/%d", noteID), token: token, query: ownerQuery(userID)}
	return c.do(ctx, r, nil)
}
