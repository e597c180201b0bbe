// SPDX-License-Identifier: MIT

package recipe

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cayley/algebra"
	"github.com/katalvlaran/cayley/ifs"
	"github.com/katalvlaran/cayley/isogonal"
	"github.com/katalvlaran/cayley/mobius"
)

// Load parses and validates one recipe. Unknown fields are rejected.
func Load(r io.Reader) (*Recipe, error) {
	var rec Recipe
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("recipe: parse YAML: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return &rec, nil
}

// LoadFile reads and parses a recipe file.
func LoadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: read %s: %w", path, err)
	}

	return Load(bytes.NewReader(data))
}

// Validate checks the recipe shape without building any transform.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	switch r.Traversal {
	case "", TraversalGroup, TraversalMonoid:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTraversal, r.Traversal)
	}
	if len(r.Generators) == 0 {
		return ErrNoGenerators
	}
	for i, g := range r.Generators {
		if err := g.validate(); err != nil {
			return fmt.Errorf("generator %d: %w", i, err)
		}
	}

	return nil
}

func (g Generator) validate() error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s needs %s", ErrMissingField, g.Kind, field)
	}
	switch g.Kind {
	case KindIdentity, KindInversion, KindPointReflection, KindReflectY, KindConjugation:
		return nil
	case KindTranslation:
		if g.Offset == nil {
			return missing("offset")
		}
	case KindRotation:
		if g.Angle == nil {
			return missing("angle")
		}
	case KindScale:
		if g.Factor == nil {
			return missing("factor")
		}
	case KindMatrix:
		if g.A == nil || g.B == nil || g.C == nil || g.D == nil {
			return missing("a, b, c and d")
		}
	case "":
		return fmt.Errorf("%w: kind", ErrMissingField)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, g.Kind)
	}

	return nil
}

// Build returns the isogonal generator of g.
func (g Generator) Build() (isogonal.Isogonal, error) {
	if err := g.validate(); err != nil {
		return isogonal.Isogonal{}, err
	}
	var (
		out isogonal.Isogonal
		m   mobius.Mobius
		err error
	)
	switch g.Kind {
	case KindIdentity:
		out = isogonal.Identity()
	case KindTranslation:
		m, err = mobius.Translation(g.Offset.Complex())
		out = isogonal.FromMobius(m)
	case KindRotation:
		m, err = mobius.Rotation(*g.Angle * math.Pi / 180)
		out = isogonal.FromMobius(m)
	case KindScale:
		m, err = mobius.Scale(*g.Factor)
		out = isogonal.FromMobius(m)
	case KindInversion:
		out = isogonal.FromMobius(mobius.Inversion())
	case KindPointReflection:
		out = isogonal.FromMobius(mobius.PointReflection())
	case KindReflectY:
		out = isogonal.ReflectY()
	case KindConjugation:
		out = isogonal.Conjugation()
	case KindMatrix:
		m, err = mobius.New(g.A.Complex(), g.B.Complex(), g.C.Complex(), g.D.Complex())
		out = isogonal.FromMobius(m)
	}
	if err != nil {
		return isogonal.Isogonal{}, err
	}
	if g.Mirror {
		out = isogonal.Conjugation().Compose(out)
	}
	if g.Center != nil {
		to, err := mobius.Translation(g.Center.Complex())
		if err != nil {
			return isogonal.Isogonal{}, err
		}
		out = algebra.Sandwich(isogonal.FromMobius(to), out)
	}

	return out, nil
}

// Build validates the recipe and returns its generators in order.
func (r *Recipe) Build() ([]isogonal.Isogonal, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := make([]isogonal.Isogonal, len(r.Generators))
	for i, g := range r.Generators {
		x, err := g.Build()
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		out[i] = x
	}

	return out, nil
}

// Apply builds the generators, runs the recipe's traversal and transforms
// shape by every element whose depth lies in [MinDepth, MaxDepth].
func Apply[T algebra.Transformable[T, isogonal.Isogonal]](r *Recipe, shape T) ([]T, error) {
	gens, err := r.Build()
	if err != nil {
		return nil, err
	}
	if r.Traversal == TraversalMonoid {
		return ifs.ApplyMonoid(ifs.NewMonoid(gens), shape, r.MinDepth, r.MaxDepth), nil
	}

	return ifs.ApplyGroup(ifs.NewGroup(gens), shape, r.MinDepth, r.MaxDepth), nil
}
