/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports variables that would export badly or not at all.
package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/color"
	"bennypowers.dev/figvars/provider"
	"bennypowers.dev/figvars/variable"
)

// ValidationError describes one problem with a variable.
type ValidationError struct {
	// Collection is the name of the owning collection.
	Collection string
	// Variable is the full slash-delimited variable name.
	Variable string
	// ModeID is the mode the problem applies to, if any.
	ModeID string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Collection != "" {
		sb.WriteString(e.Collection)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Variable)
	if e.ModeID != "" {
		sb.WriteString(" (mode ")
		sb.WriteString(e.ModeID)
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks every collected variable. Provider errors other than
// provider.ErrNotFound abort validation.
func Validate(ctx context.Context, p provider.Provider, entries []collector.Entry) ([]ValidationError, error) {
	var problems []ValidationError
	for _, entry := range entries {
		for _, v := range entry.Variables {
			found, err := validateVariable(ctx, p, entry.Collection, v)
			if err != nil {
				return nil, err
			}
			problems = append(problems, found...)
		}
	}
	return problems, nil
}

func validateVariable(ctx context.Context, p provider.Provider, c *variable.Collection, v *variable.Variable) ([]ValidationError, error) {
	var problems []ValidationError
	report := func(modeID, msg, suggestion string) {
		problems = append(problems, ValidationError{
			Collection: c.Name,
			Variable:   v.Name,
			ModeID:     modeID,
			Message:    msg,
			Suggestion: suggestion,
		})
	}

	switch v.ResolvedType {
	case variable.TypeColor, variable.TypeFloat, variable.TypeString, variable.TypeBoolean:
	default:
		report("", fmt.Sprintf("unknown type %q", v.ResolvedType), "exported with its value stringified")
	}

	if len(v.Values) == 0 {
		report("", "no mode values", "nothing is exported for this variable")
	}

	for _, mv := range v.Values {
		if len(c.Modes) > 0 && c.ModeIndex(mv.ModeID) < 0 {
			report(mv.ModeID, "mode is not declared by the collection", "")
		}

		if alias, ok := mv.Value.(variable.Alias); ok {
			target, err := p.GetVariableByID(ctx, alias.ID)
			if errors.Is(err, provider.ErrNotFound) {
				report(mv.ModeID, fmt.Sprintf("alias target %s not found", alias.ID), "exported as alias("+alias.ID+")")
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("resolving alias %s: %w", alias.ID, err)
			}
			first, ok := target.FirstValue()
			switch {
			case !ok:
				report(mv.ModeID, fmt.Sprintf("alias target %s has no values", target.Name), "exported as alias("+alias.ID+")")
			case isAlias(first):
				report(mv.ModeID, fmt.Sprintf("alias target %s is itself an alias", target.Name), "only one hop is followed")
			}
			continue
		}

		switch v.ResolvedType {
		case variable.TypeColor:
			if _, err := color.Format(mv.Value); err != nil {
				report(mv.ModeID, err.Error(), "the declaration is skipped")
			}
		case variable.TypeString:
			if mv.Value == nil {
				report(mv.ModeID, "string value is null", "the declaration is skipped")
			}
		case variable.TypeFloat:
			if _, ok := variable.Number(mv.Value); !ok {
				report(mv.ModeID, fmt.Sprintf("expected a number, got %T", mv.Value), "")
			}
		}
	}
	return problems, nil
}

func isAlias(v variable.Value) bool {
	switch v.(type) {
	case variable.Alias, *variable.Alias:
		return true
	}
	return false
}
