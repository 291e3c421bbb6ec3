package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
)

type fakeAuth struct {
	mu sync.Mutex

	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	meResp       *models.CurrentUser
	meErr        error
	meGate       chan struct{}

	meCalls    int
	loginCalls int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registerResp, f.registerErr
}

func (f *fakeAuth) Me(ctx context.Context, token string) (*models.CurrentUser, error) {
	f.mu.Lock()
	f.meCalls++
	gate := f.meGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.meResp, f.meErr
}

func (f *fakeAuth) MeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.meCalls
}

type fakePrefs struct {
	mu      sync.Mutex
	token   string
	theme   string
	saveErr error
}

func (p *fakePrefs) LoadToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token, nil
}

func (p *fakePrefs) SaveToken(ctx context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saveErr != nil {
		return p.saveErr
	}
	p.token = token
	return nil
}

func (p *fakePrefs) ClearToken(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	return nil
}

func (p *fakePrefs) LoadTheme(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme, nil
}

func (p *fakePrefs) SaveTheme(ctx context.Context, theme string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
	return nil
}

func (p *fakePrefs) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

func (p *fakePrefs) Theme() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

type recordingNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) Routes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}

var errBoom = errors.New("boom")
