package player

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/michelleon/overwatch-stats/internal/domain/hero"
	"github.com/michelleon/overwatch-stats/internal/domain/team"
)

var battleTagRegex = regexp.MustCompile(`^\S+-\d+$`)

// Entry is a tracked roster player. ID is the provider identifier in
// <handle>-<numeric-suffix> form.
type Entry struct {
	ID   string    `validate:"required,battletag"`
	Team team.ID   `validate:"required,team"`
	Role hero.Role `validate:"required,role"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func entryValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("battletag", func(fl validator.FieldLevel) bool {
			return battleTagRegex.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("team", func(fl validator.FieldLevel) bool {
			_, ok := team.Get(team.ID(fl.Field().String()))
			return ok
		})
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, ok := hero.AllRoles[hero.Role(fl.Field().String())]
			return ok
		})
		validate = v
	})
	return validate
}

func (e Entry) Validate() error {
	if err := entryValidator().Struct(e); err != nil {
		return fmt.Errorf("invalid roster entry %q: %w", e.ID, err)
	}
	return nil
}
