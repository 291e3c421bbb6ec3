package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/netx"
)

func (c *HTTPClient) ListPosts(ctx context.Context, token string) ([]models.Post, error) {
	var out []models.Post
	if err := c.doJSON(ctx, http.MethodGet, "/posts", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, token string, postID int64) (*models.Post, error) {
	var out models.Post
	if err := c.doJSON(ctx, http.MethodGet, idPath("/posts/%d", postID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, token string, form models.PostForm) (*models.Post, error) {
	return c.sendPost(ctx, http.MethodPost, "/posts", token, form)
}

func (c *HTTPClient) UpdatePost(ctx context.Context, token string, postID int64, form models.PostForm) (*models.Post, error) {
	return c.sendPost(ctx, http.MethodPut, idPath("/posts/%d", postID), token, form)
}

func (c *HTTPClient) DeletePost(ctx context.Context, token string, postID int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/posts/%d", postID), token, nil, nil)
}

// sendPost encodes form as multipart: title, content, optional category
// and tags, one "files" part per attachment.
func (c *HTTPClient) sendPost(ctx context.Context, method, path, token string, form models.PostForm) (*models.Post, error) {
	fields := []netx.Field{
		{Name: "title", Value: form.Title},
		{Name: "content", Value: form.Content},
	}
	if form.Category != "" {
		fields = append(fields, netx.Field{Name: "category", Value: form.Category})
	}
	if form.Tags != "" {
		fields = append(fields, netx.Field{Name: "tags", Value: form.Tags})
	}

	files := make([]netx.File, 0, len(form.Files))
	for _, a := range form.Files {
		files = append(files, netx.File{Field: "files", FileName: a.FileName, Content: a.Content})
	}

	body, contentType, err := netx.BuildMultipart(fields, files)
	if err != nil {
		return nil, err
	}

	var out models.Post
	r := request{method: method, path: path, token: token, body: body, contentType: contentType}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, token string, postID int64, in models.CommentInput) (*models.Post, error) {
	var out models.Post
	if err := c.doJSON(ctx, http.MethodPost, idPath("/posts/%d/comments", postID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateComment(ctx context.Context, token string, postID, commentID int64, in models.CommentInput) (*models.Post, error) {
	var out models.Post
	path := idPath("/posts/%d/comments/%d", postID, commentID)
	if err := c.doJSON(ctx, http.MethodPut, path, token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, token string, commentID int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/comments/%d", commentID), token, nil, nil)
}

func (c *HTTPClient) React(ctx context.Context, token string, postID int64, in models.ReactionInput) (*models.Post, error) {
	var out models.Post
	if err := c.doJSON(ctx, http.MethodPost, idPath("/posts/%d/reactions", postID), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
