package scene

import (
	"encoding/json"
	"sync"
)

// Graph is the retained scene: an ordered list of stroke children. The
// pipeline appends strokes as they are drawn; the history engine serializes
// and restores the full child list. All methods are safe for concurrent use
// (the render side reads while the event side mutates).
type Graph struct {
	mu       sync.RWMutex
	children []*Stroke
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a child to the scene.
func (g *Graph) Add(s *Stroke) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.children = append(g.children, s)
}

// Remove deletes the child with the given ID, preserving order of the rest.
func (g *Graph) Remove(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, c := range g.children {
		if c.ID == id {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return
		}
	}
}

// RemoveAll drops every child.
func (g *Graph) RemoveAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.children = nil
}

// Len returns the number of children.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.children)
}

// Children returns a copy of the child list in scene order.
func (g *Graph) Children() []*Stroke {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Stroke, len(g.children))
	copy(out, g.children)
	return out
}

// Serialize marshals every child independently, in scene order. The caller
// treats each blob as opaque; AddSerialized reconstructs the child exactly.
func (g *Graph) Serialize() ([]json.RawMessage, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]json.RawMessage, 0, len(g.children))
	for _, c := range g.children {
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

// AddSerialized appends a child previously produced by Serialize.
func (g *Graph) AddSerialized(raw json.RawMessage) error {
	var s Stroke
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	g.Add(&s)
	return nil
}

// document is the persisted form of a full scene.
type document struct {
	Children []*Stroke `json:"children"`
}

// ToJSON serializes the whole scene as a single document blob.
func (g *Graph) ToJSON() ([]byte, error) {
	g.mu.RLock()
	doc := document{Children: g.children}
	data, err := json.Marshal(doc)
	g.mu.RUnlock()
	return data, err
}

// FromJSON replaces the scene contents with a document blob produced by
// ToJSON.
func (g *Graph) FromJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	g.mu.Lock()
	g.children = doc.Children
	g.mu.Unlock()
	return nil
}
