package player

import (
	"fmt"

	"github.com/michelleon/overwatch-stats/internal/domain/hero"
	"github.com/michelleon/overwatch-stats/internal/domain/team"
)

var defaultRoster = []Entry{
	{ID: "HarryHook-3986", Team: team.DallasFuel, Role: hero.RoleSupport},
	{ID: "sinatraa-11809", Team: team.SanFranciscoShock, Role: hero.RoleOffense},
	{ID: "zappis-21285", Team: team.FloridaMayhem, Role: hero.RoleDefense},
	{ID: "Muma-11444", Team: team.HoustonOutlaws, Role: hero.RoleTank},
	{ID: "Fleta-31226", Team: team.SeoulDynasty, Role: hero.RoleOffense},
}

// DefaultRoster returns a copy of the tracked players in declaration order.
func DefaultRoster() []Entry {
	out := make([]Entry, len(defaultRoster))
	copy(out, defaultRoster)
	return out
}

// Filter keeps the entries whose IDs are listed, in roster order. An empty id
// list returns the roster unchanged. Unknown IDs are an error.
func Filter(entries []Entry, ids []string) ([]Entry, error) {
	if len(ids) == 0 {
		return entries, nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]Entry, 0, len(ids))
	for _, entry := range entries {
		if _, ok := wanted[entry.ID]; ok {
			out = append(out, entry)
			delete(wanted, entry.ID)
		}
	}
	for _, id := range ids {
		if _, missing := wanted[id]; missing {
			return nil, fmt.Errorf("player %q is not on the roster", id)
		}
	}

	return out, nil
}
