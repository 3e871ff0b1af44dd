// Package slides loads deck files and builds the read-only slide registry.
package slides

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/deck/internal/validate"
)

// Role is the animation role of a slide element.
type Role string

const (
	RoleTitle   Role = "title"
	RoleFade    Role = "fade"
	RoleStagger Role = "stagger"
	RoleStatic  Role = "static"
)

// BehaviorCountdown marks the slide that runs the countdown timer.
const BehaviorCountdown = "countdown"

// ErrEmptyDeck is returned for decks without slides.
var ErrEmptyDeck = errors.New("deck has no slides")

//go:embed default.deck.yaml
var defaultDeck []byte

// Element is one animated (or static) block of slide content.
type Element struct {
	Role Role   `yaml:"role" json:"role" validate:"omitempty,anim_role"`
	Text string `yaml:"text" json:"text" validate:"required"`
}

// Slide is a slide as written in a deck file.
type Slide struct {
	Title    string    `yaml:"title" json:"title"`
	Behavior string    `yaml:"behavior,omitempty" json:"behavior,omitempty" validate:"omitempty,oneof=countdown"`
	Elements []Element `yaml:"elements" json:"elements" validate:"dive"`
}

// Deck is the top-level deck file.
type Deck struct {
	Title  string  `yaml:"title" json:"title"`
	Author string  `yaml:"author,omitempty" json:"author,omitempty"`
	Slides []Slide `yaml:"slides" json:"slides" validate:"dive"`
}

// Parse decodes and validates a deck document.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding deck: %w", err)
	}
	if len(d.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	for i := range d.Slides {
		for j := range d.Slides[i].Elements {
			if d.Slides[i].Elements[j].Role == "" {
				d.Slides[i].Elements[j].Role = RoleStatic
			}
		}
	}
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}
	return &d, nil
}

// Load reads a deck file from disk.
func Load(path string) (*Deck, error) {
	logrus.Debug("Loading deck from: ", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Default returns the deck bundled with the binary.
func Default() *Deck {
	d, err := Parse(defaultDeck)
	if err != nil {
		panic(fmt.Sprintf("embedded deck is invalid: %v", err))
	}
	return d
}

// LoadOrDefault loads path, or the bundled deck when path is empty.
func LoadOrDefault(path string) (*Deck, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
