package hero

import (
	"fmt"
	"sort"
	"strings"
)

type seed struct {
	displayName string
	role        Role
	apiKey      string
}

// Provider keys that do not match the lower-cased display name are listed
// explicitly in apiKey.
var seeds = []seed{
	{displayName: "Doomfist", role: RoleOffense},
	{displayName: "Genji", role: RoleOffense},
	{displayName: "McCree", role: RoleOffense},
	{displayName: "Pharah", role: RoleOffense},
	{displayName: "Reaper", role: RoleOffense},
	{displayName: "Soldier76", role: RoleOffense},
	{displayName: "Sombra", role: RoleOffense},
	{displayName: "Tracer", role: RoleOffense},
	{displayName: "Bastion", role: RoleDefense},
	{displayName: "Hanzo", role: RoleDefense},
	{displayName: "Junkrat", role: RoleDefense},
	{displayName: "Mei", role: RoleDefense},
	{displayName: "Torbjorn", role: RoleDefense},
	{displayName: "Widowmaker", role: RoleDefense},
	{displayName: "DVa", role: RoleTank, apiKey: "dVa"},
	{displayName: "Orisa", role: RoleTank},
	{displayName: "Reinhardt", role: RoleTank},
	{displayName: "Roadhog", role: RoleTank},
	{displayName: "Winston", role: RoleTank},
	{displayName: "Zarya", role: RoleTank},
	{displayName: "Brigitte", role: RoleSupport},
	{displayName: "Lucio", role: RoleSupport},
	{displayName: "Mercy", role: RoleSupport},
	{displayName: "Moira", role: RoleSupport},
	{displayName: "Symmetra", role: RoleSupport},
	{displayName: "Zenyatta", role: RoleSupport},
}

// Registry is a read-only hero table built once at startup.
type Registry struct {
	byName  map[string]Hero
	apiKeys map[string]string
}

var defaultRegistry = mustBuildRegistry(seeds)

// Default returns the built-in hero table.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from heroes. Heroes with an empty APIKey use
// their name as the provider key.
func NewRegistry(heroes []Hero) (*Registry, error) {
	r := &Registry{
		byName:  make(map[string]Hero, len(heroes)),
		apiKeys: make(map[string]string),
	}
	for _, h := range heroes {
		if h.APIKey == "" {
			h.APIKey = h.Name
		}
		if err := h.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.byName[h.Name]; exists {
			return nil, fmt.Errorf("duplicate hero: %s", h.Name)
		}
		r.byName[h.Name] = h
		if h.APIKey != h.Name {
			r.apiKeys[h.Name] = h.APIKey
		}
	}

	return r, nil
}

func mustBuildRegistry(items []seed) *Registry {
	heroes := make([]Hero, 0, len(items))
	for _, item := range items {
		heroes = append(heroes, Hero{
			Name:   strings.ToLower(item.displayName),
			Role:   item.role,
			APIKey: item.apiKey,
		})
	}
	r, err := NewRegistry(heroes)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the hero with the given lower-cased name.
func (r *Registry) Get(name string) (Hero, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// LookupKey maps a normalized hero identifier to the key used by the stats
// provider. Identifiers without an entry in the normalization table are
// returned unchanged.
func (r *Registry) LookupKey(name string) string {
	if key, ok := r.apiKeys[name]; ok {
		return key
	}
	return name
}

// Normalizations returns a copy of the normalized-name -> provider-key table.
func (r *Registry) Normalizations() map[string]string {
	out := make(map[string]string, len(r.apiKeys))
	for k, v := range r.apiKeys {
		out[k] = v
	}
	return out
}

// ByRole lists heroes of the role sorted by name.
func (r *Registry) ByRole(role Role) []Hero {
	out := make([]Hero, 0, 8)
	for _, h := range r.byName {
		if h.Role == role {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Len() int {
	return len(r.byName)
}
