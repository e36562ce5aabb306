package app

import (
	"slices"
	"sync"
)

// Hook splices section context into an outgoing prompt.
type Hook func(prompt, sectionContext string) string

// PrependContext places the context in front of the prompt.
func PrependContext(prompt, sectionContext string) string {
	return "Context for the current section:\n\n" + sectionContext + "\n\n" + prompt
}

type registeredHook struct {
	id   int
	name string
	hook Hook
}

// Registry is the process-wide enable flag and list of injection hooks.
type Registry struct {
	mu      sync.RWMutex
	enabled bool
	nextID  int
	hooks   []registeredHook
}

// NewRegistry creates a disabled registry without hooks.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a hook and returns the function that removes it again.
func (r *Registry) Register(name string, hook Hook) (deregister func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.hooks = append(r.hooks, registeredHook{id: id, name: name, hook: hook})

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.hooks = slices.DeleteFunc(r.hooks, func(h registeredHook) bool { return h.id == id })
		})
	}
}

// Names lists the registered hooks in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.hooks))
	for i, h := range r.hooks {
		names[i] = h.name
	}
	return names
}

// SetEnabled turns injection on or off.
func (r *Registry) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// Enabled reports whether injection is on.
func (r *Registry) Enabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled
}

// Apply runs every hook in registration order.
func (r *Registry) Apply(prompt, sectionContext string) string {
	r.mu.RLock()
	hooks := slices.Clone(r.hooks)
	r.mu.RUnlock()

	for _, h := range hooks {
		prompt = h.hook(prompt, sectionContext)
	}
	return prompt
}
