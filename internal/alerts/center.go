package alerts

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pickfoo-owner/internal/domain"
)

// Navigator is where alert actions send the user.
type Navigator interface {
	Navigate(route string)
}

// SoundPlayer plays the notification sound. Failures are swallowed: a
// blocked or missing audio device must never break an alert.
type SoundPlayer interface {
	Play() error
}

// Alert is a transient notification. It auto-dismisses after Duration and,
// when selected, navigates to Route.
type Alert struct {
	ID       string
	Title    string
	Message  string
	Tone     domain.Tone
	Route    string
	Duration time.Duration
	Created  time.Time
}

const defaultDuration = 8 * time.Second

// Center holds the currently visible alerts.
type Center struct {
	Nav   Navigator
	Sound SoundPlayer

	mu     sync.Mutex
	active map[string]Alert
	timers map[string]*time.Timer
	closed bool
}

func NewCenter(nav Navigator, sound SoundPlayer) *Center {
	return &Center{
		Nav:    nav,
		Sound:  sound,
		active: make(map[string]Alert),
		timers: make(map[string]*time.Timer),
	}
}

// Push displays an alert and returns its id. The sound is best-effort.
func (c *Center) Push(a Alert) string {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Duration <= 0 {
		a.Duration = defaultDuration
	}
	a.Created = time.Now()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return a.ID
	}
	c.active[a.ID] = a
	id := a.ID
	c.timers[id] = time.AfterFunc(a.Duration, func() { c.Dismiss(id) })
	c.mu.Unlock()

	c.playSound()
	log.Printf("[alerts] %s: %s (%s)", a.Title, a.Message, a.Tone)
	return a.ID
}

func (c *Center) playSound() {
	if c.Sound == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[alerts] sound playback panicked: %v", r)
		}
	}()
	if err := c.Sound.Play(); err != nil {
		log.Printf("[alerts] sound playback failed: %v", err)
	}
}

// Select activates an alert: navigates to its route and dismisses it.
func (c *Center) Select(id string) {
	c.mu.Lock()
	a, ok := c.active[id]
	c.mu.Unlock()
	if !ok {
		return
	}
	if a.Route != "" && c.Nav != nil {
		c.Nav.Navigate(a.Route)
	}
	c.Dismiss(id)
}

func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	delete(c.active, id)
}

// Active returns the visible alerts, oldest first.
func (c *Center) Active() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Alert, 0, len(c.active))
	for _, a := range c.active {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out
}

// Close dismisses everything and stops accepting alerts.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.active = make(map[string]Alert)
}
