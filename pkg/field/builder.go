package field

import "fmt"

// FieldBuilder assembles a Field through chained setters. It starts from
// NFL defaults.
type FieldBuilder struct {
	field Field
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{field: *New()}
}

func (b *FieldBuilder) SetName(name string) *FieldBuilder {
	b.field.Name = name
	return b
}

func (b *FieldBuilder) SetSurface(surface SurfaceType) *FieldBuilder {
	b.field.Surface = surface
	return b
}

// SetDimensions changes length and width, validated against the current end
// zone length. Boundaries, hash marks and center are recomputed. On error
// the builder is left unchanged.
func (b *FieldBuilder) SetDimensions(length, width float32) (*FieldBuilder, error) {
	if err := validateDimensions(length, width, b.field.EndzoneLength); err != nil {
		return b, fmt.Errorf("set dimensions: %w", err)
	}
	b.field.setDimensions(length, width)
	return b, nil
}

// SetEndzoneLength changes the depth of both end zones, validated against
// the current length.
func (b *FieldBuilder) SetEndzoneLength(endzoneLength float32) (*FieldBuilder, error) {
	if err := validateDimensions(b.field.Length, b.field.Width, endzoneLength); err != nil {
		return b, fmt.Errorf("set end zone length: %w", err)
	}
	b.field.EndzoneLength = endzoneLength
	return b, nil
}

// Build returns a copy of the configured field. The builder stays usable.
func (b *FieldBuilder) Build() *Field {
	f := b.field
	return &f
}
