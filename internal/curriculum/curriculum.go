package curriculum

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/curriculum.yaml
var embedded []byte

// Catalog is the read-only curriculum tree plus the resource directory.
type Catalog struct {
	tracks    []Track
	resources []ResourceCategory

	modules map[string]*Module
	topics  map[string]topicRef
}

type topicRef struct {
	topic    Topic
	moduleID string
}

type document struct {
	Tracks    []Track            `yaml:"tracks"`
	Resources []ResourceCategory `yaml:"resources"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded curriculum. It panics if the embedded data
// is malformed, which can only happen with a broken build.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(embedded))
		if err != nil {
			panic(fmt.Sprintf("curriculum: embedded data invalid: %v", err))
		}
		slog.Debug("curriculum loaded", "tracks", len(c.tracks), "modules", len(c.modules), "topics", len(c.topics))
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses a curriculum document and validates it.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}

	c := &Catalog{
		tracks:    doc.Tracks,
		resources: doc.Resources,
		modules:   make(map[string]*Module),
		topics:    make(map[string]topicRef),
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) index() error {
	if len(c.tracks) == 0 {
		return fmt.Errorf("curriculum has no tracks")
	}
	for ti := range c.tracks {
		tr := &c.tracks[ti]
		if tr.ID == "" {
			return fmt.Errorf("track %d has no id", ti)
		}
		for mi := range tr.Modules {
			m := &tr.Modules[mi]
			if m.ID == "" {
				return fmt.Errorf("track %q: module %d has no id", tr.ID, mi)
			}
			if _, dup := c.modules[m.ID]; dup {
				return fmt.Errorf("duplicate module id %q", m.ID)
			}
			c.modules[m.ID] = m
			for _, t := range m.Topics {
				if t.ID == "" {
					return fmt.Errorf("module %q: topic with empty id", m.ID)
				}
				if t.Type != TopicTheory && t.Type != TopicLab {
					return fmt.Errorf("topic %q: unknown type %q", t.ID, t.Type)
				}
				if _, dup := c.topics[t.ID]; dup {
					return fmt.Errorf("duplicate topic id %q", t.ID)
				}
				c.topics[t.ID] = topicRef{topic: t, moduleID: m.ID}
			}
		}
	}
	return nil
}

// Tracks returns all tracks in curriculum order.
func (c *Catalog) Tracks() []Track {
	return c.tracks
}

// Resources returns the resource directory in display order.
func (c *Catalog) Resources() []ResourceCategory {
	return c.resources
}

// Module looks up a module by id.
func (c *Catalog) Module(id string) (Module, bool) {
	m, ok := c.modules[id]
	if !ok {
		return Module{}, false
	}
	return *m, true
}

// Topic looks up a topic by id and reports the module it belongs to.
func (c *Catalog) Topic(id string) (Topic, string, bool) {
	ref, ok := c.topics[id]
	return ref.topic, ref.moduleID, ok
}

// AllModules returns every module in curriculum order.
func (c *Catalog) AllModules() []Module {
	var out []Module
	for _, tr := range c.tracks {
		out = append(out, tr.Modules...)
	}
	return out
}

// TopicCount returns the number of topics across all modules.
func (c *Catalog) TopicCount() int {
	return len(c.topics)
}
