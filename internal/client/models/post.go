package models

import (
	"io"
	"strings"
)

// ReactionType enumerates the reactions a post accepts.
type ReactionType string

const (
	ReactionLike ReactionType = "LIKE"
	ReactionLove ReactionType = "LOVE"
)

// Post as rendered in the feed.
type Post struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category,omitempty"`
	Tags      string     `json:"tags,omitempty"`
	Images    string     `json:"images,omitempty"`
	Likes     int        `json:"likes"`
	CreatedAt string     `json:"createdAt,omitempty"`
	User      *User      `json:"user,omitempty"`
	Comments  []Comment  `json:"comments"`
	Reactions []Reaction `json:"reactions"`
}

// ImageURLs splits the comma-separated Images field.
func (p Post) ImageURLs() []string {
	if strings.TrimSpace(p.Images) == "" {
		return nil
	}
	parts := strings.Split(p.Images, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ReactionCount counts reactions of the given type.
func (p Post) ReactionCount(rt ReactionType) int {
	n := 0
	for _, r := range p.Reactions {
		if r.ReactionType == string(rt) {
			n++
		}
	}
	return n
}

// ReactionBy returns the reaction left by userID, if any.
func (p Post) ReactionBy(userID int64) (Reaction, bool) {
	for _, r := range p.Reactions {
		if r.UserID == userID {
			return r, true
		}
	}
	return Reaction{}, false
}

type Comment struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
	User      *User  `json:"user,omitempty"`
}

type Reaction struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
	ReactionType string `json:"reactionType"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CommentInput is the body of comment create/update calls.
type CommentInput struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// ReactionInput is the body of POST /posts/{id}/reactions.
type ReactionInput struct {
	ReactionType ReactionType `json:"reactionType" validate:"required,oneof=LIKE LOVE"`
}

// Attachment is a file sent with a post as a multipart part.
type Attachment struct {
	FileName string    `validate:"required"`
	Content  io.Reader `validate:"required"`
}

// PostForm collects the multipart fields of post create/update.
type PostForm struct {
	Title    string       `json:"title" validate:"required,max=200"`
	Content  string       `json:"content" validate:"required"`
	Category string       `json:"category" validate:"max=100"`
	Tags     string       `json:"tags" validate:"max=200"`
	Files    []Attachment `json:"files" validate:"max=5,dive"`
}
