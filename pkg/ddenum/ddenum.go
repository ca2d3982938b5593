package ddenum

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ib-77/fluentutils/pkg/monad"
)

// CodeNotFound is the error code of a failed lookup.
const CodeNotFound monad.ErrorCode = "ENUM_01"

// Enum is the common part of every enumeration member.
// Embed it in a struct to add domain properties to the members.
type Enum struct {
	Value       int
	DisplayName string
	Description string
}

func New(value int, displayName string) Enum {
	return Enum{Value: value, DisplayName: displayName}
}

// NewDescribed declares a member with a longer description.
func NewDescribed(value int, displayName, description string) Enum {
	return Enum{Value: value, DisplayName: displayName, Description: description}
}

// Describe returns the description, or the display name when there is none.
func (e Enum) Describe() string {
	if e.Description == "" {
		return e.DisplayName
	}
	return e.Description
}

// Member returns e and makes any struct embedding Enum Enumerable.
func (e Enum) Member() Enum {
	return e
}

func (e Enum) String() string {
	return e.DisplayName
}

// Compare orders members by value.
func (e Enum) Compare(other Enum) int {
	return cmp.Compare(e.Value, other.Value)
}

type Enumerable interface {
	Member() Enum
}

// Registry holds the declared members of one enumeration.
type Registry[E Enumerable] struct {
	name    string
	members []E
}

// NewRegistry declares the members of the enumeration called name.
// It panics when two members share a value.
func NewRegistry[E Enumerable](name string, members ...E) *Registry[E] {
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b E) int {
		return a.Member().Compare(b.Member())
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Member().Value == sorted[i].Member().Value {
			panic(fmt.Sprintf("ddenum: %s declares value %d twice", name, sorted[i].Member().Value))
		}
	}

	return &Registry[E]{name: name, members: sorted}
}

func (r *Registry[E]) Name() string {
	return r.name
}

// All returns the members ordered by value.
func (r *Registry[E]) All() []E {
	return slices.Clone(r.members)
}

func (r *Registry[E]) FromValue(value int) monad.Result[E] {
	return r.find(value, "value", func(e Enum) bool {
		return e.Value == value
	})
}

// FromDisplayName matches display names ignoring case.
func (r *Registry[E]) FromDisplayName(displayName string) monad.Result[E] {
	return r.find(displayName, "display name", func(e Enum) bool {
		return strings.EqualFold(e.DisplayName, displayName)
	})
}

func (r *Registry[E]) find(key any, what string, match func(Enum) bool) monad.Result[E] {
	for _, member := range r.members {
		if match(member.Member()) {
			return monad.Ok(member)
		}
	}

	return monad.Err[E](monad.NewError(
		CodeNotFound,
		monad.ErrorMessage(fmt.Sprintf("'%v' is not a valid %s in %s.", key, what, r.name)),
	))
}
