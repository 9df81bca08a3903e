package guard

import (
	"context"
	"log"
	"sync"

	"pickfoo-owner/internal/domain"
)

// Decision is the outcome of evaluating a route against the session.
type Decision int

const (
	// Loading: the session has not finished initializing; render nothing.
	Loading Decision = iota
	// Denied: not signed in, or signed in with the wrong role.
	Denied
	// OnboardingRequired: a legitimate owner with zero restaurants.
	OnboardingRequired
	// Allowed: render the requested route.
	Allowed
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case Denied:
		return "denied"
	case OnboardingRequired:
		return "onboarding-required"
	case Allowed:
		return "allowed"
	default:
		return "unknown"
	}
}

const (
	RouteLogin       = "/login"
	RouteRestaurants = "/restaurants"
	RouteOnboarding  = "/restaurants?onboard=1"
	RouteOrders      = "/orders"

	RoleOwner = "owner"
)

// Navigator receives the guard's redirect side effects.
type Navigator interface {
	Navigate(route string)
}

type Session interface {
	IsInitialized() bool
	IsAuthenticated() bool
	Current() *domain.User
}

// RestaurantLister is the onboarding check's read path. It is the shared
// cached restaurant query, so the guard and the dashboard do not pay for the
// same fetch twice.
type RestaurantLister interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
}

// Guard gates every owner-area route. It only redirects or renders; it never
// surfaces errors itself.
type Guard struct {
	Session     Session
	Restaurants RestaurantLister
	Nav         Navigator

	mu   sync.Mutex
	last Decision
	seen bool
}

func New(session Session, restaurants RestaurantLister, nav Navigator) *Guard {
	return &Guard{Session: session, Restaurants: restaurants, Nav: nav}
}

// Evaluate decides what the given route may render. Re-evaluating an
// unchanged state is idempotent: the redirect fires only on the transition
// into Denied or OnboardingRequired, not on every render.
func (g *Guard) Evaluate(ctx context.Context, route string) Decision {
	decision := g.decide(ctx, route)

	g.mu.Lock()
	transition := !g.seen || g.last != decision
	g.last = decision
	g.seen = true
	g.mu.Unlock()

	if !transition {
		return decision
	}
	switch decision {
	case Denied:
		g.Nav.Navigate(RouteLogin)
	case OnboardingRequired:
		g.Nav.Navigate(RouteOnboarding)
	case Loading, Allowed:
	}
	return decision
}

func (g *Guard) decide(ctx context.Context, route string) Decision {
	if !g.Session.IsInitialized() {
		return Loading
	}

	user := g.Session.Current()
	if !g.Session.IsAuthenticated() || user == nil || user.Role != RoleOwner {
		return Denied
	}

	// The onboarding check must not run on the restaurants route itself: it
	// would redirect away from its own destination.
	if route == RouteRestaurants {
		return Allowed
	}

	list, err := g.Restaurants.List(ctx)
	if ctx.Err() != nil {
		// Route unmounted while the check was in flight; discard the result.
		return Allowed
	}
	if err != nil {
		// Fail open: redirect only on a confirmed empty list, never trap an
		// owner behind a transient network error.
		log.Printf("[guard] onboarding check failed, allowing route %s: %v", route, err)
		return Allowed
	}
	if len(list) == 0 {
		return OnboardingRequired
	}
	return Allowed
}
