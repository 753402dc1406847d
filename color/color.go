/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color formats normalized variable colors as CSS color text.
package color

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"bennypowers.dev/figvars/variable"
)

// ErrInvalidColor indicates a color value without numeric r, g, and b channels,
// or with a non-numeric alpha channel.
var ErrInvalidColor = errors.New("invalid color value")

// Format converts a color value to "#rrggbb", or to "rgba(R, G, B, A)" when
// the alpha channel is present and below 1. Alpha always carries two decimals.
func Format(v any) (string, error) {
	c, err := FromValue(v)
	if err != nil {
		return "", err
	}
	if c.A != nil && *c.A < 1 {
		return toRGBA(c), nil
	}
	return toHex(c), nil
}

// FromValue normalizes a Color, *Color, or raw {r, g, b, a} map.
func FromValue(v any) (variable.Color, error) {
	switch c := v.(type) {
	case variable.Color:
		return c, nil
	case *variable.Color:
		if c == nil {
			return variable.Color{}, fmt.Errorf("%w: nil color", ErrInvalidColor)
		}
		return *c, nil
	case map[string]any:
		return fromMap(c)
	default:
		return variable.Color{}, fmt.Errorf("%w: unexpected %T", ErrInvalidColor, v)
	}
}

func fromMap(m map[string]any) (variable.Color, error) {
	var c variable.Color
	for _, ch := range []struct {
		key string
		dst *float64
	}{{"r", &c.R}, {"g", &c.G}, {"b", &c.B}} {
		f, ok := variable.Number(m[ch.key])
		if !ok {
			return variable.Color{}, fmt.Errorf("%w: channel %q is missing or not numeric", ErrInvalidColor, ch.key)
		}
		*ch.dst = f
	}
	if raw, exists := m["a"]; exists {
		a, ok := variable.Number(raw)
		if !ok {
			return variable.Color{}, fmt.Errorf("%w: alpha is not numeric", ErrInvalidColor)
		}
		c.A = &a
	}
	return c, nil
}

func toColorful(c variable.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

func toHex(c variable.Color) string {
	return toColorful(c).Hex()
}

func toRGBA(c variable.Color) string {
	r, g, b := toColorful(c).RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(*c.A))
}

// formatAlpha writes a with two decimals. Exact ties round away from zero
// rather than to even, so 0.125 becomes "0.13".
func formatAlpha(a float64) string {
	if isHundredthTie(a) {
		a = math.Nextafter(a, math.Copysign(math.Inf(1), a))
	}
	return strconv.FormatFloat(a, 'f', 2, 64)
}

// isHundredthTie reports whether a*100 lies exactly halfway between integers.
func isHundredthTie(a float64) bool {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return false
	}
	scaled := new(big.Rat).SetFloat64(a)
	scaled.Mul(scaled, big.NewRat(100, 1))
	return scaled.Denom().Cmp(big.NewInt(2)) == 0
}
