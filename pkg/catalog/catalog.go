package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/models"
)

const identifierSuffix = "_ms"

var nonIdentifierChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// Catalog deduplicates market segments by name and hands out stable
// identifiers for them. It is owned by the caller and passed explicitly to
// whatever needs to look segments up.
type Catalog struct {
	byName  map[string]*entry
	byID    map[string]*entry
	ordered []*entry
	logger  ectologger.Logger
	mu      sync.RWMutex
}

type entry struct {
	id      string
	segment *models.MarketSegment
}

// New creates an empty catalog
func New(logger ectologger.Logger) *Catalog {
	return &Catalog{
		byName: make(map[string]*entry),
		byID:   make(map[string]*entry),
		logger: logger,
	}
}

// Identifier derives the catalog identifier for a segment name: spaces become
// underscores, "_ms" is appended and anything outside [a-zA-Z0-9_] is dropped.
func Identifier(name string) string {
	id := strings.ReplaceAll(name, " ", "_") + identifierSuffix
	return nonIdentifierChars.ReplaceAllString(id, "")
}

// Register adds the segment and returns its identifier. If a segment with the
// same name is already registered, the existing identifier is returned and the
// catalog is left unchanged.
func (c *Catalog) Register(segment *models.MarketSegment) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.register(segment).id
}

func (c *Catalog) register(segment *models.MarketSegment) *entry {
	if existing, ok := c.byName[segment.Name()]; ok {
		if existing.segment != segment {
			c.logger.WithField("segment", segment.Name()).Debugf("Segment '%s' already registered as '%s'", segment.Name(), existing.id)
		}
		return existing
	}

	e := &entry{
		id:      c.uniqueID(Identifier(segment.Name())),
		segment: segment,
	}
	c.byName[segment.Name()] = e
	c.byID[e.id] = e
	c.ordered = append(c.ordered, e)

	c.logger.WithField("segment_id", e.id).Debugf("Registered segment '%s'", segment.Name())
	return e
}

// uniqueID suffixes colliding identifiers (R&D and RD both derive RD_ms).
func (c *Catalog) uniqueID(base string) string {
	id := base
	for n := 2; ; n++ {
		if _, taken := c.byID[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

// Lookup finds a registered segment by name
func (c *Catalog) Lookup(name string) (*models.MarketSegment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return e.segment, true
}

// Get finds a registered segment by identifier
func (c *Catalog) Get(id string) (*models.MarketSegment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return e.segment, true
}

// IdentifierOf returns the identifier a segment name is registered under
func (c *Catalog) IdentifierOf(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byName[name]
	if !ok {
		return "", false
	}
	return e.id, true
}

// GetOrCreate returns the segment registered under name, creating and
// registering an empty one when there is none.
func (c *Catalog) GetOrCreate(name string) *models.MarketSegment {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.byName[name]; ok {
		return e.segment
	}
	return c.register(models.NewMarketSegment(name)).segment
}

// Segments returns the registered segments in registration order
func (c *Catalog) Segments() []*models.MarketSegment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.MarketSegment, 0, len(c.ordered))
	for _, e := range c.ordered {
		out = append(out, e.segment)
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}
