// Package catalog provides card definitions to the engine: a built-in
// registry of scripted cards and an optional PostgreSQL-backed store for
// bulk card data.
package catalog

import (
	"fmt"
	"sort"

	"github.com/Jesterhearts/piece-go/internal/game"
)

// Registry holds card faces by name.
type Registry struct {
	faces map[string]game.CardFace
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{faces: make(map[string]game.CardFace)}
}

// Register adds a face; registering the same name twice is a programming
// error.
func (r *Registry) Register(face game.CardFace) {
	if _, exists := r.faces[face.Name]; exists {
		panic(fmt.Sprintf("card %q registered twice", face.Name))
	}
	r.faces[face.Name] = face
}

// Get looks up a face by name.
func (r *Registry) Get(name string) (game.CardFace, bool) {
	face, ok := r.faces[name]
	return face, ok
}

// MustGet looks up a face that must exist.
func (r *Registry) MustGet(name string) game.CardFace {
	face, ok := r.faces[name]
	if !ok {
		panic(fmt.Sprintf("no such card: %q", name))
	}
	return face
}

// Names returns all registered card names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.faces))
	for name := range r.faces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered faces.
func (r *Registry) Len() int { return len(r.faces) }

func intPtr(v int) *int { return &v }
