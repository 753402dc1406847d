/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snapshot provides a Provider backed by local-variables snapshot
// files (the host's REST payload shape), in JSON with comments or YAML.
package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/figvars/color"
	"bennypowers.dev/figvars/fs"
	"bennypowers.dev/figvars/provider"
	"bennypowers.dev/figvars/variable"
)

// ErrInvalidSnapshot indicates a snapshot file that cannot be read as variables.
var ErrInvalidSnapshot = errors.New("invalid variables snapshot")

const aliasType = "VARIABLE_ALIAS"

// Provider serves collections and variables loaded from snapshot files.
type Provider struct {
	*provider.Memory
}

type rawMode struct {
	ModeID string `yaml:"modeId"`
	Name   string `yaml:"name"`
}

type rawCollection struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Modes       []rawMode `yaml:"modes"`
	VariableIDs []string  `yaml:"variableIds"`
}

type rawVariable struct {
	ID                   string    `yaml:"id"`
	Name                 string    `yaml:"name"`
	ResolvedType         string    `yaml:"resolvedType"`
	VariableCollectionID string    `yaml:"variableCollectionId"`
	ValuesByMode         yaml.Node `yaml:"valuesByMode"`
}

// document is one parsed file, in file order.
type document struct {
	collections []*variable.Collection
	variables   []*variable.Variable
}

// Load reads every file in order. Collections are reported in file order;
// a variable id seen again in a later file replaces the earlier variable.
func Load(filesystem fs.FileSystem, paths ...string) (*Provider, error) {
	var docs []*document
	for _, path := range paths {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := parse(data, filepath.Ext(path))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return build(docs), nil
}

// FromBytes builds a Provider from a single snapshot; ext selects the
// decoder (".json" strips comments first).
func FromBytes(data []byte, ext string) (*Provider, error) {
	doc, err := parse(data, ext)
	if err != nil {
		return nil, err
	}
	return build([]*document{doc}), nil
}

func build(docs []*document) *Provider {
	byID := make(map[string]*variable.Collection)
	var collections []*variable.Collection
	variables := make(map[string]*variable.Variable)
	var order []string

	for _, doc := range docs {
		for _, c := range doc.collections {
			byID[c.ID] = c
			collections = append(collections, c)
		}
		for _, v := range doc.variables {
			if _, seen := variables[v.ID]; !seen {
				order = append(order, v.ID)
			}
			variables[v.ID] = v
		}
	}

	// Collections without variableIds own the variables that point at them.
	for _, c := range collections {
		if c.VariableIDs != nil {
			continue
		}
		for _, id := range order {
			if variables[id].CollectionID == c.ID {
				c.VariableIDs = append(c.VariableIDs, id)
			}
		}
	}

	m := provider.NewMemory()
	for _, c := range collections {
		m.AddCollection(c)
	}
	for _, id := range order {
		v := variables[id]
		if c, ok := byID[v.CollectionID]; ok {
			orderModes(v, c)
		}
		m.AddVariable(v)
	}
	return &Provider{Memory: m}
}

// orderModes sorts a variable's values by the collection's mode order.
// Modes the collection does not declare keep their file order at the end.
func orderModes(v *variable.Variable, c *variable.Collection) {
	rank := func(i int) int {
		if idx := c.ModeIndex(v.Values[i].ModeID); idx >= 0 {
			return idx
		}
		return len(c.Modes)
	}
	sort.SliceStable(v.Values, func(i, j int) bool {
		return rank(i) < rank(j)
	})
}

// parse decodes a single snapshot document. Mapping order in the file is
// preserved for collections, variables, and valuesByMode.
func parse(data []byte, ext string) (*document, error) {
	if strings.EqualFold(ext, ".json") {
		data = jsonc.ToJSON(data)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
	}

	meta := lookup(root.Content[0], "meta")
	if meta == nil || meta.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: missing meta object", ErrInvalidSnapshot)
	}

	doc := &document{}
	if err := eachEntry(lookup(meta, "variableCollections"), func(key string, node *yaml.Node) error {
		c, err := decodeCollection(key, node)
		if err != nil {
			return err
		}
		doc.collections = append(doc.collections, c)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := eachEntry(lookup(meta, "variables"), func(key string, node *yaml.Node) error {
		v, err := decodeVariable(key, node)
		if err != nil {
			return err
		}
		doc.variables = append(doc.variables, v)
		return nil
	}); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeCollection(key string, node *yaml.Node) (*variable.Collection, error) {
	var raw rawCollection
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: collection %s: %v", ErrInvalidSnapshot, key, err)
	}
	c := &variable.Collection{
		ID:          raw.ID,
		Name:        raw.Name,
		VariableIDs: raw.VariableIDs,
	}
	if c.ID == "" {
		c.ID = key
	}
	for _, m := range raw.Modes {
		c.Modes = append(c.Modes, variable.Mode{ID: m.ModeID, Name: m.Name})
	}
	return c, nil
}

func decodeVariable(key string, node *yaml.Node) (*variable.Variable, error) {
	var raw rawVariable
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: variable %s: %v", ErrInvalidSnapshot, key, err)
	}
	v := &variable.Variable{
		ID:           raw.ID,
		Name:         raw.Name,
		ResolvedType: variable.Type(raw.ResolvedType),
		CollectionID: raw.VariableCollectionID,
	}
	if v.ID == "" {
		v.ID = key
	}

	if raw.ValuesByMode.Kind == 0 {
		return v, nil
	}
	err := eachEntry(&raw.ValuesByMode, func(modeID string, valueNode *yaml.Node) error {
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("%w: variable %s mode %s: %v", ErrInvalidSnapshot, v.ID, modeID, err)
		}
		v.Values = append(v.Values, variable.ModeValue{
			ModeID: modeID,
			Value:  normalize(value, v.ResolvedType),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// normalize converts decoded data into the variable value model.
// Values that do not fit are kept raw so the emitter can report them.
func normalize(value any, typ variable.Type) variable.Value {
	if f, ok := variable.Number(value); ok {
		return f
	}
	switch val := value.(type) {
	case map[string]any:
		if t, _ := val["type"].(string); t == aliasType {
			id, _ := val["id"].(string)
			return variable.Alias{ID: id}
		}
		if c, err := color.FromValue(val); err == nil {
			return c
		}
	case string:
		if typ != variable.TypeColor {
			return val
		}
		if parsed, err := csscolorparser.Parse(val); err == nil {
			a := parsed.A
			return variable.Color{R: parsed.R, G: parsed.G, B: parsed.B, A: &a}
		}
	}
	return value
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// eachEntry visits the pairs of a mapping node in document order.
// A missing node visits nothing.
func eachEntry(mapping *yaml.Node, fn func(key string, node *yaml.Node) error) error {
	if mapping == nil {
		return nil
	}
	if mapping.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected an object at line %d", ErrInvalidSnapshot, mapping.Line)
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if err := fn(mapping.Content[i].Value, mapping.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
