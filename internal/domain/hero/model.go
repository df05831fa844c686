package hero

import (
	"fmt"
	"strings"
)

// Role is the in-game role bucket a hero belongs to.
type Role string

const (
	RoleOffense Role = "OFFENSE"
	RoleDefense Role = "DEFENSE"
	RoleSupport Role = "SUPPORT"
	RoleTank    Role = "TANK"
)

var AllRoles = map[Role]struct{}{
	RoleOffense: {},
	RoleDefense: {},
	RoleSupport: {},
	RoleTank:    {},
}

// AllHeroesKey is the career stats bucket aggregating every hero.
const AllHeroesKey = "allHeroes"

// Hero is a playable character. Name is lower-cased; APIKey is the key the
// stats provider uses in its JSON documents.
type Hero struct {
	Name   string
	Role   Role
	APIKey string
}

func (h Hero) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("hero name is required")
	}
	if h.Name != strings.ToLower(h.Name) {
		return fmt.Errorf("hero name must be lower case: %s", h.Name)
	}
	if _, ok := AllRoles[h.Role]; !ok {
		return fmt.Errorf("invalid hero role: %s", h.Role)
	}
	if h.APIKey == "" {
		return fmt.Errorf("hero api key is required")
	}

	return nil
}
