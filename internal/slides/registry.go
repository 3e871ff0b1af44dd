package slides

import "fmt"

// Descriptor is the immutable, resolved form of a slide. Element groups are
// resolved once here so transitions never have to search for them.
type Descriptor struct {
	Index                int
	Title                string
	HasAuxiliaryBehavior bool

	Elements []Element
	// Titles, Fades and Staggers index into Elements, in document order.
	Titles   []int
	Fades    []int
	Staggers []int
}

// Animated returns the indices of all elements that take part in the enter
// and exit phases.
func (d Descriptor) Animated() []int {
	out := make([]int, 0, len(d.Titles)+len(d.Fades)+len(d.Staggers))
	out = append(out, d.Titles...)
	out = append(out, d.Fades...)
	out = append(out, d.Staggers...)
	return out
}

// Registry is the fixed sequence of slides for the process lifetime.
type Registry struct {
	title  string
	author string
	slides []Descriptor
}

// NewRegistry enumerates the deck's slides in document order.
func NewRegistry(d *Deck) *Registry {
	r := &Registry{title: d.Title, author: d.Author, slides: make([]Descriptor, len(d.Slides))}
	for i, s := range d.Slides {
		desc := Descriptor{
			Index:                i,
			Title:                s.Title,
			HasAuxiliaryBehavior: s.Behavior == BehaviorCountdown,
			Elements:             append([]Element(nil), s.Elements...),
		}
		if desc.Title == "" {
			desc.Title = fmt.Sprintf("Slide %d", i+1)
		}
		for j, el := range s.Elements {
			switch el.Role {
			case RoleTitle:
				desc.Titles = append(desc.Titles, j)
			case RoleFade:
				desc.Fades = append(desc.Fades, j)
			case RoleStagger:
				desc.Staggers = append(desc.Staggers, j)
			case RoleStatic:
			}
		}
		r.slides[i] = desc
	}
	return r
}

// Count returns the number of slides.
func (r *Registry) Count() int { return len(r.slides) }

// TitleOf returns the display title of slide index.
func (r *Registry) TitleOf(index int) string {
	if index < 0 || index >= len(r.slides) {
		return fmt.Sprintf("Slide %d", index+1)
	}
	return r.slides[index].Title
}

// HasAuxiliaryBehavior reports whether slide index runs the countdown.
func (r *Registry) HasAuxiliaryBehavior(index int) bool {
	if index < 0 || index >= len(r.slides) {
		return false
	}
	return r.slides[index].HasAuxiliaryBehavior
}

// Descriptor returns slide index. It panics on an out-of-range index.
func (r *Registry) Descriptor(index int) Descriptor { return r.slides[index] }

// Title is the deck title.
func (r *Registry) Title() string { return r.title }

// Author is the deck author, if any.
func (r *Registry) Author() string { return r.author }
