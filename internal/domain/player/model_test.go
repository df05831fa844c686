package player

import (
	"testing"

	"github.com/michelleon/overwatch-stats/internal/domain/hero"
	"github.com/michelleon/overwatch-stats/internal/domain/team"
)

func TestDefaultRoster_IsValid(t *testing.T) {
	t.Parallel()

	roster := DefaultRoster()
	if len(roster) != 5 {
		t.Fatalf("expected 5 roster entries, got=%d", len(roster))
	}
	if roster[0].ID != "HarryHook-3986" || roster[4].ID != "Fleta-31226" {
		t.Fatalf("unexpected roster order: first=%s last=%s", roster[0].ID, roster[4].ID)
	}
	for _, entry := range roster {
		if err := entry.Validate(); err != nil {
			t.Fatalf("expected valid entry: %v", err)
		}
	}
}

func TestEntryValidate_RejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := map[string]Entry{
		"missing suffix": {ID: "sinatraa", Team: team.SanFranciscoShock, Role: hero.RoleOffense},
		"alpha suffix":   {ID: "sinatraa-abc", Team: team.SanFranciscoShock, Role: hero.RoleOffense},
		"empty id":       {ID: "", Team: team.SanFranciscoShock, Role: hero.RoleOffense},
		"unknown team":   {ID: "sinatraa-11809", Team: "PARIS_ETERNAL", Role: hero.RoleOffense},
		"unknown role":   {ID: "sinatraa-11809", Team: team.SanFranciscoShock, Role: "FLEX"},
		"whitespace id":  {ID: "sin atraa-11809", Team: team.SanFranciscoShock, Role: hero.RoleOffense},
	}

	for name, entry := range cases {
		entry := entry
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if err := entry.Validate(); err == nil {
				t.Fatalf("expected validation error for %+v", entry)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	roster := DefaultRoster()

	all, err := Filter(roster, nil)
	if err != nil {
		t.Fatalf("filter without ids: %v", err)
	}
	if len(all) != len(roster) {
		t.Fatalf("expected full roster, got=%d", len(all))
	}

	got, err := Filter(roster, []string{"Fleta-31226", "HarryHook-3986"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 || got[0].ID != "HarryHook-3986" || got[1].ID != "Fleta-31226" {
		t.Fatalf("expected roster order preserved, got=%+v", got)
	}

	if _, err := Filter(roster, []string{"HarryHook-3986", "nobody-1"}); err == nil {
		t.Fatalf("expected error for player not on roster")
	}
}
