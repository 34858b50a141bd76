package domain

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"
)

const Name = "residence"

var ErrUnknownAction = errors.New("unknown residence action")

const (
	TypeFlat  Type = "FLAT"
	TypeHouse Type = "HOUSE"
)

const (
	ActionSetPrimary Action = "set-primary"
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionClone      Action = "clone"
)

type (
	ID     int
	Type   string
	Action string

	Residence struct {
		ID            ID
		StreetAddress string
		FlatNumber    string
		City          string
		PostalCode    string
		Country       string
		ResidencyType Type
		FullAddress   string
		Active        bool
		Primary       bool
		Secondary     bool
	}
)

func Types() []Type {
	return []Type{TypeFlat, TypeHouse}
}

func (t Type) Label() string {
	return strcase.ToCamel(strcase.ToSnake(string(t)))
}

func (t Type) Valid() bool {
	return t == TypeFlat || t == TypeHouse
}

func ParseAction(value string) (Action, error) {
	for _, a := range []Action{ActionSetPrimary, ActionActivate, ActionDeactivate, ActionClone} {
		if string(a) == value {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAction, value)
}
