package models

// User is the public part of a user account.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Profile is returned by GET /profile/{id} and by follow/unfollow.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt,omitempty"`
	Followers []User `json:"followers"`
	Posts     []Post `json:"posts"`
}

// FollowedBy reports whether userID is among the profile's followers.
func (p *Profile) FollowedBy(userID int64) bool {
	if p == nil {
		return false
	}
	for _, f := range p.Followers {
		if f.ID == userID {
			return true
		}
	}
	return false
}

// Note is a private note pinned to a user's profile.
type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// NoteInput is the body of note create/update calls.
type NoteInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}
