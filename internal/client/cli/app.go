package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/services"
	"github.com/dmitrijs2005/skillsphere/internal/client/session"
	"github.com/dmitrijs2005/skillsphere/internal/logging"
)

// Preferences is the durable preference store plus a full reset.
type Preferences interface {
	session.PreferenceStore
	Reset(ctx context.Context) error
}

// Deps are the collaborators NewApp wires together.
type Deps struct {
	Client          client.Client
	Auth            services.AuthService
	Prefs           Preferences
	Logger          logging.Logger
	NotificationTTL time.Duration
	In              io.Reader
	Out             io.Writer
}

type App struct {
	session *session.Controller
	prefs   Preferences
	feed    services.FeedService
	profile services.ProfileService
	plans   services.PlanService
	subs    services.SubscriptionService
	log     logging.Logger

	reader *bufio.Reader
	out    *syncWriter

	// readFile is a test seam for os.ReadFile.
	readFile func(name string) ([]byte, error)

	mu          sync.Mutex
	seen        map[string]struct{}
	pending     string
	unsubscribe func()
}

func NewApp(d Deps) *App {
	a := &App{
		prefs:    d.Prefs,
		log:      d.Logger,
		readFile: os.ReadFile,
		seen:     make(map[string]struct{}),
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	in, out := d.In, d.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	a.reader = bufio.NewReader(in)
	a.out = &syncWriter{w: out}

	a.session = session.New(d.Auth, d.Prefs,
		session.WithNavigator(a),
		session.WithLogger(a.log),
		session.WithNotificationTTL(d.NotificationTTL),
	)
	a.feed = services.NewFeedService(d.Client, a.session)
	a.profile = services.NewProfileService(d.Client, a.session)
	a.plans = services.NewPlanService(d.Client, a.session)
	a.subs = services.NewSubscriptionService(d.Client, a.session)
	a.unsubscribe = a.session.Subscribe(a.onState)
	return a
}

// Session exposes the controller behind the app.
func (a *App) Session() *session.Controller {
	return a.session
}

// Run restores the stored session and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	done := a.session.Initialize(ctx)
	select {
	case <-done:
	case <-ctx.Done():
		return
	}
	if id, ok := a.session.Identity(); ok {
		a.println("Welcome back, " + id.Username + ".")
	}

	a.repl(ctx)
}

// Close stops notification timers and detaches the printer.
func (a *App) Close() {
	a.unsubscribe()
	a.session.Close()
}

// Navigate records the route; the REPL renders it after the current
// command returns.
func (a *App) Navigate(route string) {
	a.mu.Lock()
	a.pending = route
	a.mu.Unlock()
}

func (a *App) takePending() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.pending
	a.pending = ""
	return r
}

// onState prints notifications the first time they appear.
func (a *App) onState(s session.State) {
	a.mu.Lock()
	defer a.mu.Unlock()

	live := make(map[string]struct{}, len(s.Notifications))
	for _, n := range s.Notifications {
		live[n.ID] = struct{}{}
		if _, ok := a.seen[n.ID]; ok {
			continue
		}
		fmt.Fprintf(a.out, "[!] %s\n", n.Message)
	}
	a.seen = live
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// syncWriter serializes writes from the REPL and the notification printer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
