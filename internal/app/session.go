package app

import (
	"context"
	"log"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

// MenuKind selects which menu the frontends show.
type MenuKind uint8

const (
	MenuHidden MenuKind = iota
	MenuStart
	MenuOffer
	MenuPending
	MenuLimit
	MenuResult
)

func (k MenuKind) String() string {
	switch k {
	case MenuHidden:
		return "hidden"
	case MenuStart:
		return "start"
	case MenuOffer:
		return "offer"
	case MenuPending:
		return "pending"
	case MenuLimit:
		return "limit"
	case MenuResult:
		return "result"
	default:
		return "unknown"
	}
}

// Menu is what a frontend needs to draw the current menu. Button is empty
// when the menu has no action.
type Menu struct {
	Kind   MenuKind
	Title  string
	Detail string
	Button string
}

const (
	titleStart   = "Seaplane"
	titleLimit   = "Daily limit reached"
	titleOffer   = "Extra attempt"
	titlePending = "Loading..."
	titleFailed  = "Attempt unavailable"

	buttonOffer = "Watch ad"
	buttonAgain = "Fly again"

	limitClose  = 2500 * time.Millisecond
	resultClose = 3 * time.Second
	failClose   = 1500 * time.Millisecond
)

// Session drives the menu flow around a flight game: boot once assets are
// resolved, gate retries, show results and schedule closing.
type Session struct {
	sim  *flight.Game
	opts LaunchOptions
	gate RetryGate
	view core.Size

	menu    Menu
	booted  bool
	running bool

	pending chan error
	cancel  context.CancelFunc

	closing bool
	closeAt time.Duration
	quit    bool
}

// NewSession prepares a session. A nil gate admits every retry at once.
func NewSession(sim *flight.Game, opts LaunchOptions, gate RetryGate, view core.Size) *Session {
	return &Session{
		sim:  sim,
		opts: opts,
		gate: gate,
		view: view,
		menu: Menu{Kind: MenuStart, Title: titleStart, Detail: titlePending},
	}
}

// Menu returns the menu to display.
func (s *Session) Menu() Menu { return s.menu }

// Booted reports whether Boot has run.
func (s *Session) Booted() bool { return s.booted }

// Quit reports that the session asked the host to close.
func (s *Session) Quit() bool { return s.quit }

// Resize changes the viewport handed to the next run.
func (s *Session) Resize(view core.Size) { s.view = view }

// Boot runs the launch decision once assets have loaded or failed.
func (s *Session) Boot(now time.Duration) {
	if s.booted {
		return
	}
	s.booted = true
	switch {
	case s.opts.LimitReached:
		s.menu = Menu{Kind: MenuLimit, Title: titleLimit}
		s.closeAfter(now, limitClose)
	case s.opts.AdMode:
		s.menu = Menu{Kind: MenuOffer, Title: titleOffer, Button: buttonOffer}
	default:
		s.begin()
	}
}

// Press handles the menu action key.
func (s *Session) Press(ctx context.Context, now time.Duration) {
	if !s.booted {
		return
	}
	switch s.menu.Kind {
	case MenuOffer:
		s.request(ctx)
	case MenuResult:
		if s.menu.Button == "" {
			return
		}
		if s.opts.AdMode {
			s.request(ctx)
			return
		}
		s.begin()
	}
}

// Update polls the retry gate and watches for the end of a run. It never
// blocks.
func (s *Session) Update(now time.Duration) {
	if s.pending != nil {
		select {
		case err := <-s.pending:
			s.pending = nil
			s.cancel()
			if err != nil {
				log.Printf("session: retry gate: %v", err)
				s.menu = Menu{Kind: MenuLimit, Title: titleFailed}
				s.closeAfter(now, failClose)
			} else {
				s.begin()
			}
		default:
		}
	}

	if s.running && !s.sim.Running() {
		s.running = false
		s.showResult(now)
	}

	if s.closing && now >= s.closeAt {
		s.quit = true
	}
}

// Close abandons an outstanding retry request.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Session) begin() {
	s.closing = false
	s.menu = Menu{Kind: MenuHidden}
	s.sim.Start(s.opts.Seed, s.view)
	s.running = true
}

func (s *Session) request(ctx context.Context) {
	if s.pending != nil {
		return
	}
	s.menu = Menu{Kind: MenuPending, Title: titlePending}
	if s.gate == nil {
		s.begin()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	s.pending, s.cancel = done, cancel
	go func(gate RetryGate) {
		done <- gate(ctx)
	}(s.gate)
}

func (s *Session) showResult(now time.Duration) {
	out, _ := s.sim.Outcome()
	m := Menu{Kind: MenuResult, Title: flight.ResultText(out.Score)}
	if out.Landed {
		m.Detail = "Landed"
	} else {
		m.Detail = "Crashed: " + out.Reason.String()
	}
	if s.opts.AutoClose {
		s.closeAfter(now, resultClose)
	} else if s.opts.AdMode {
		m.Button = buttonOffer
	} else {
		m.Button = buttonAgain
	}
	s.menu = m
	log.Printf("session: seed %d %s score %.2f", out.Seed, m.Detail, out.Score)
}

func (s *Session) closeAfter(now, d time.Duration) {
	if !s.opts.AutoClose && s.menu.Kind != MenuLimit {
		return
	}
	s.closing = true
	s.closeAt = now + d
}
