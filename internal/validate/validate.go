package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/slides/deck.go
//   type Element struct {
//       Role Role   `yaml:"role" validate:"omitempty,anim_role"`
//       Text string `yaml:"text" validate:"required"`
//   }
//
// This keeps the deck, config and state file tags consistent across packages.

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// animRoles lists the element roles understood by the enter phase.
//
//nolint:gochecknoglobals // immutable lookup table.
var animRoles = map[string]struct{}{
	"title":   {},
	"fade":    {},
	"stagger": {},
	"static":  {},
}

//nolint:gochecknoglobals // compiled once.
var fragmentRE = regexp.MustCompile(`^#?slide-[0-9]+$`)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on an empty tag or a nil func.
		_ = validatorInst.RegisterValidation("anim_role", func(fl validator.FieldLevel) bool {
			_, ok := animRoles[fl.Field().String()]
			return ok
		})
		_ = validatorInst.RegisterValidation("slide_fragment", func(fl validator.FieldLevel) bool {
			return fragmentRE.MatchString(fl.Field().String())
		})
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
