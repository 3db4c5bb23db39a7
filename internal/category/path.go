package category

import (
	"fmt"
	"slices"
	"strings"
)

// PathSeparator joins the segments of a Path in its string form.
const PathSeparator = "/"

// Path is an ordered, non-empty sequence of category names leading from one
// category to a descendant, e.g. "food/fruits/apple".
//
// Paths are compared by value. Concat and Append modify the receiver in
// place; a copy taken before the call keeps its own segments, so copies may be
// appended to independently.
type Path struct {
	segments []string
}

// NewPath builds a Path from a separator-joined string, a slice of segments
// or another Path. The source is always copied.
//
// A path without segments, or with an empty segment, fails with
// ErrInvalidPath; this covers leading, trailing and doubled separators.
// Any other source type fails with ErrPathType.
func NewPath(source any) (Path, error) {
	var segments []string

	switch v := source.(type) {
	case string:
		segments = strings.Split(v, PathSeparator)
	case []string:
		segments = slices.Clone(v)
	case Path:
		segments = slices.Clone(v.segments)
	case *Path:
		if v == nil {
			return Path{}, fmt.Errorf("%w: got nil", ErrPathType)
		}
		segments = slices.Clone(v.segments)
	case []any:
		segments = make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return Path{}, fmt.Errorf("%w: segment %v is not a string", ErrInvalidPath, item)
			}
			segments = append(segments, s)
		}
	default:
		return Path{}, fmt.Errorf("%w: got %T", ErrPathType, source)
	}

	if len(segments) == 0 {
		return Path{}, fmt.Errorf("%w: no segments", ErrInvalidPath)
	}
	for _, s := range segments {
		if s == "" {
			return Path{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, strings.Join(segments, PathSeparator))
		}
	}

	return Path{segments: segments}, nil
}

// ParsePath parses a separator-joined path such as "fruits/apple".
func ParsePath(s string) (Path, error) {
	return NewPath(s)
}

// MustPath is like NewPath but panics on error. Intended for literals.
func MustPath(source any) Path {
	p, err := NewPath(source)
	if err != nil {
		panic(err)
	}
	return p
}

// String joins the segments with PathSeparator.
func (p Path) String() string {
	return strings.Join(p.segments, PathSeparator)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Root returns the first segment.
func (p Path) Root() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[0]
}

// At returns the one-segment Path at index i. Negative indices count from
// the end. An index outside the path fails with ErrInvalidPath.
func (p Path) At(i int) (Path, error) {
	n := len(p.segments)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Path{}, fmt.Errorf("%w: index %d out of range for %q", ErrInvalidPath, i, p)
	}
	return Path{segments: []string{p.segments[i]}}, nil
}

// Slice returns a new Path over segments[i:j]. Negative bounds count from
// the end and bounds past either end are clamped. A range holding no segments
// fails with ErrInvalidPath.
func (p Path) Slice(i, j int) (Path, error) {
	n := len(p.segments)
	i, j = clampIndex(i, n), clampIndex(j, n)
	if i >= j {
		return Path{}, fmt.Errorf("%w: [%d:%d] of %q is empty", ErrInvalidPath, i, j, p)
	}
	return Path{segments: slices.Clone(p.segments[i:j])}, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

// tail drops the first segment. The result may be empty and then matches
// nothing.
func (p Path) tail() Path {
	if len(p.segments) == 0 {
		return p
	}
	return Path{segments: p.segments[1:len(p.segments):len(p.segments)]}
}

// Contains reports whether name is one of the segments.
func (p Path) Contains(name string) bool {
	return slices.Contains(p.segments, name)
}

// Equal reports whether other normalises to the same segments. other may be
// anything NewPath accepts; values that fail to normalise are never equal.
func (p Path) Equal(other any) bool {
	o, err := NewPath(other)
	if err != nil {
		return false
	}
	return slices.Equal(p.segments, o.segments)
}

// Concat appends the segments of other to p in place and returns p.
func (p *Path) Concat(other any) (*Path, error) {
	o, err := NewPath(other)
	if err != nil {
		return p, err
	}
	p.segments = append(slices.Clip(p.segments), o.segments...)
	return p, nil
}

// Append adds a single segment to p in place.
func (p *Path) Append(segment string) {
	p.segments = append(slices.Clip(p.segments), segment)
}
