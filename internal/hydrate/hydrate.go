// Package hydrate re-renders the parts of the terminal output that show
// the signed-in identity, reading nothing but the cached session
package hydrate

import (
	"sync"

	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

// Region is a part of the output that identity is rendered into
type Region interface {
	Print(logs ...terminal.Log)
}

// Regions are the places identity is rendered into.
// A nil region is left alone.
type Regions struct {
	Navbar        Region
	ProfileHeader Region
	Banner        Region
}

// set of region names
const (
	regionNavbar        = "navbar"
	regionProfileHeader = "profile header"
	regionBanner        = "banner"
)

// Notifier renders the cached identity into its regions
type Notifier struct {
	store   *session.Store
	regions Regions

	mu   sync.Mutex
	last map[string]string
}

// New creates a new Notifier
func New(store *session.Store, regions Regions) *Notifier {
	return &Notifier{store: store, regions: regions, last: map[string]string{}}
}

// SetRegions replaces the regions identity is rendered into
func (n *Notifier) SetRegions(regions Regions) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.regions = regions
}

func (n *Notifier) currentRegions() Regions {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.regions
}

// Hydrate renders every region from the cached session
func (n *Notifier) Hydrate() {
	n.NavbarAuthState()
	n.ProfileHeader()
	n.Banner()
}

// NavbarAuthState renders whether a user is signed in, and their credits
func (n *Notifier) NavbarAuthState() {
	region := n.currentRegions().Navbar
	if region == nil {
		return
	}
	rec, ok := n.store.CurrentUser()
	n.render(regionNavbar, region, navbar(rec, ok))
}

// ProfileHeader renders the signed-in user's name, email, credits and avatar
func (n *Notifier) ProfileHeader() {
	region := n.currentRegions().ProfileHeader
	if region == nil {
		return
	}
	rec, ok := n.store.CurrentUser()
	if !ok {
		return
	}
	n.render(regionProfileHeader, region, profileHeader(rec))
}

// Banner renders the signed-in user's banner
func (n *Notifier) Banner() {
	region := n.currentRegions().Banner
	if region == nil {
		return
	}
	rec, ok := n.store.CurrentUser()
	if !ok {
		return
	}
	n.render(regionBanner, region, banner(rec))
}

// render prints the log unless the region already shows the same content
func (n *Notifier) render(name string, region Region, log terminal.Log) {
	content, err := log.Data.Message()
	if err != nil {
		return
	}

	n.mu.Lock()
	if n.last[name] == content {
		n.mu.Unlock()
		return
	}
	n.last[name] = content
	n.mu.Unlock()

	region.Print(log)
}
