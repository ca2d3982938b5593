package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/fluentutils/pkg/monad"
	"github.com/ib-77/fluentutils/pkg/pipeline"
)

const maxNameLength = 255

type Person struct {
	Name string `json:"name"`
}

// EmptyPerson stands in for a person that could not be created.
var EmptyPerson = Person{}

var ErrEmptyName = monad.NewError("P01", "A person must have a name.")

// NewPerson validates name. Overlong names fail with a code derived from
// this function.
func NewPerson(name string) monad.Result[Person] {
	if name == "" {
		return monad.Err[Person](ErrEmptyName)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return monad.ErrWith[Person](
			fmt.Sprintf("A name cannot be more than %d characters long", maxNameLength), nil)
	}
	return monad.Ok(Person{Name: name})
}

type createPerson struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func (createPerson) RequestName() string {
	return "CreatePerson"
}

func createPersonHandler(_ context.Context, req createPerson) monad.Result[Person] {
	return NewPerson(req.Name)
}

var trimmedName = pipeline.ValidatorFunc[createPerson](func(_ context.Context, req createPerson) []pipeline.Failure {
	if strings.TrimSpace(req.Name) != req.Name {
		return []pipeline.Failure{{Field: "Name", Message: "must not have leading or trailing spaces"}}
	}
	return nil
})
