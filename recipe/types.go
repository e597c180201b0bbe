// SPDX-License-Identifier: MIT

package recipe

import "errors"

// Sentinel errors for recipe loading and building.
var (
	ErrUnknownKind      = errors.New("recipe: unknown generator kind")
	ErrUnknownTraversal = errors.New("recipe: unknown traversal")
	ErrMissingField     = errors.New("recipe: missing required field")
	ErrNoGenerators     = errors.New("recipe: at least one generator is required")
)

// Traversal names.
const (
	TraversalGroup  = "group"
	TraversalMonoid = "monoid"
)

// Generator kinds.
const (
	KindIdentity        = "identity"
	KindTranslation     = "translation"
	KindRotation        = "rotation"
	KindScale           = "scale"
	KindInversion       = "inversion"
	KindPointReflection = "point_reflection"
	KindReflectY        = "reflect_y"
	KindConjugation     = "conjugation"
	KindMatrix          = "matrix"
)

// Vec is a complex number written as [re, im].
type Vec [2]float64

// Complex returns re + im·i.
func (v Vec) Complex() complex128 {
	return complex(v[0], v[1])
}

// Recipe describes one pattern: which traversal to run, how deep, and over
// which generators.
type Recipe struct {
	// Name identifies the recipe.
	Name string `yaml:"name"`

	// Traversal is "group" (default) or "monoid".
	Traversal string `yaml:"traversal,omitempty"`

	// MinDepth and MaxDepth bound the words whose transforms are applied.
	MinDepth int `yaml:"min_depth,omitempty"`
	MaxDepth int `yaml:"max_depth"`

	// Generators lists the base transforms in symbol order.
	Generators []Generator `yaml:"generators"`
}

// Generator describes one base transform. Which fields are required depends
// on Kind.
type Generator struct {
	Kind string `yaml:"kind"`

	// Offset is the displacement of a translation.
	Offset *Vec `yaml:"offset,omitempty"`

	// Angle is the rotation angle in degrees.
	Angle *float64 `yaml:"angle,omitempty"`

	// Factor is the real scale factor.
	Factor *float64 `yaml:"factor,omitempty"`

	// A, B, C, D are the coefficients of a matrix generator.
	A *Vec `yaml:"a,omitempty"`
	B *Vec `yaml:"b,omitempty"`
	C *Vec `yaml:"c,omitempty"`
	D *Vec `yaml:"d,omitempty"`

	// Center, when set, moves the fixed point of the transform from the
	// origin to Center.
	Center *Vec `yaml:"center,omitempty"`

	// Mirror follows the transform with complex conjugation.
	Mirror bool `yaml:"mirror,omitempty"`
}
