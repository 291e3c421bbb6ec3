package session

import (
	"context"
	"strconv"
	"time"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme reads a persisted theme value. Anything but "dark" is light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

// Identity is the authenticated user as seen by the views.
type Identity struct {
	ID       int64
	Username string
	Token    string
	IsAdmin  bool
	Theme    Theme
}

type Notification struct {
	ID        string
	Message   string
	CreatedAt time.Time
}

// AuthForm is the state of the login/register prompt.
type AuthForm struct {
	Visible bool
	Mode    AuthMode
	Error   string
}

// State is an immutable snapshot handed to views and subscribers.
type State struct {
	Identity      *Identity
	Theme         Theme
	Notifications []Notification
	AuthForm      AuthForm
	Epoch         uint64
}

// Authenticated reports whether the snapshot carries an identity.
func (s State) Authenticated() bool { return s.Identity != nil }

// Authenticator is the backend auth collaborator.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Me(ctx context.Context, token string) (*models.CurrentUser, error)
}

// PreferenceStore is durable client-side storage for the credential and
// the theme. Load methods return "" when nothing is stored.
type PreferenceStore interface {
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}

// Navigator performs the navigation side effects of auth transitions.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

const (
	RouteHome  = "/"
	RouteAdmin = "/admin"
)

// ProfileRoute is the route of a user's profile page.
func ProfileRoute(userID int64) string {
	return "/profile/" + strconv.FormatInt(userID, 10)
}

const (
	MsgLoggedIn       = "Logged in successfully"
	MsgRegistered     = "Registered successfully"
	MsgLoggedOut      = "Logged out successfully"
	MsgLoginFailed    = "Login failed. Please check your credentials."
	MsgRegisterFailed = "Registration failed"
	MsgSessionExpired = "Session expired. Please log in again."
)

// ActionError is returned by Login and Register. Message is what the user
// was shown.
type ActionError struct {
	Op      string
	Message string
	Err     error
}

func (e *ActionError) Error() string { return e.Message }

func (e *ActionError) Unwrap() error { return e.Err }
