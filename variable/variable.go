/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package variable provides the design-tool variable model.
package variable

import (
	"strconv"
)

// Type is the declared type of a variable's values.
type Type string

// Known variable types. Unknown types are carried verbatim.
const (
	TypeColor   Type = "COLOR"
	TypeFloat   Type = "FLOAT"
	TypeString  Type = "STRING"
	TypeBoolean Type = "BOOLEAN"
)

// IsNumeric reports whether values of this type are numbers.
func (t Type) IsNumeric() bool {
	return t == TypeFloat
}

// Value is a variable value: a float64, string, bool, Color, Alias,
// or raw provider data that could not be normalized.
type Value = any

// Alias is a value that refers to another variable by id.
type Alias struct {
	ID string `json:"id"`
}

// String renders the alias the way it appears when printed as a literal value.
func (a Alias) String() string {
	return "alias(" + a.ID + ")"
}

// Color is a normalized color with channels in [0, 1].
// A is nil when the source did not carry an alpha channel.
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// Mode is a named context (e.g. light or dark) under which a variable
// may carry a distinct value.
type Mode struct {
	ID   string `json:"modeId"`
	Name string `json:"name"`
}

// ModeValue pairs a mode id with the variable's value in that mode.
type ModeValue struct {
	ModeID string `json:"modeId"`
	Value  Value  `json:"value"`
}

// Variable is a named design token with one value per mode.
type Variable struct {
	// ID is the provider-assigned identifier.
	ID string `json:"id"`

	// Name is the slash-delimited hierarchical name (e.g. "Theme colors/Primary/Base").
	Name string `json:"name"`

	// ResolvedType is the declared type of the values.
	ResolvedType Type `json:"resolvedType"`

	// CollectionID identifies the owning collection.
	CollectionID string `json:"variableCollectionId,omitempty"`

	// Values holds the per-mode values in mode order.
	Values []ModeValue `json:"valuesByMode"`
}

// FirstValue returns the value of the first mode, if any.
func (v *Variable) FirstValue() (Value, bool) {
	if v == nil || len(v.Values) == 0 {
		return nil, false
	}
	return v.Values[0].Value, true
}

// Info returns the parsed group and short name of the variable.
func (v *Variable) Info() Info {
	return ParseName(v.Name)
}

// CSSVariableName returns the custom property name for this variable.
// e.g. "Theme colors/Primary/Base" becomes "--Base".
func (v *Variable) CSSVariableName() string {
	return "--" + v.Info().Name
}

// Collection is an ordered group of variables as organized by the source tool.
type Collection struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Modes       []Mode   `json:"modes"`
	VariableIDs []string `json:"variableIds"`
}

// ModeIndex returns the position of modeID in the collection's mode list,
// or -1 when the collection does not declare it.
func (c *Collection) ModeIndex(modeID string) int {
	for i, m := range c.Modes {
		if m.ID == modeID {
			return i
		}
	}
	return -1
}

// FormatNumber renders a number in its shortest round-trip form ("8", "1.5").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
