// Package category implements a named, hierarchical tree of categories
// addressed by slash-delimited paths.
//
// A tree is a set of *Category nodes connected by owned child lists and
// non-owning parent pointers. Every mutation keeps these rules:
//
//   - exactly one node per tree has no parent (the root),
//   - no two siblings share a name,
//   - no node shares its name with any of its ancestors,
//   - the root cannot be deleted or moved.
//
// Node identity is pointer identity. Name equality is a separate check
// (SameName) used where the rules are about names rather than nodes.
//
// The tree is not safe for concurrent use; callers serialize mutations.
package category

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Category is one node of a category tree.
type Category struct {
	// Description and Image are free-form metadata and are not validated.
	Description string
	Image       string

	name     string
	parent   *Category
	children []*Category
}

// Option configures a Category built by New.
type Option func(*options)

type options struct {
	parent      *Category
	description string
	image       string
	children    []*Category
}

// WithDescription sets the description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// WithImage sets the image reference.
func WithImage(image string) Option {
	return func(o *options) { o.image = image }
}

// WithParent attaches the new category under parent.
func WithParent(parent *Category) Option {
	return func(o *options) { o.parent = parent }
}

// WithChildren attaches children, in order, under the new category.
func WithChildren(children ...*Category) Option {
	return func(o *options) { o.children = append(o.children, children...) }
}

// New creates a category. Children are attached in order, then the category
// itself is attached under the parent, if any, through the same
// duplicate-checked routine as Add.
func New(name string, opts ...Option) (*Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Category{
		name:        name,
		Description: o.description,
		Image:       o.image,
		children:    []*Category{},
	}

	for _, child := range o.children {
		if err := c.addChild(child); err != nil {
			return nil, err
		}
	}

	if o.parent != nil {
		if c.SameName(o.parent) {
			return nil, fmt.Errorf("%w: %q", ErrSameNameParent, o.parent.name)
		}
		if err := o.parent.addChild(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, opts ...Option) *Category {
	c, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

func (c *Category) String() string {
	return c.name
}

// SameName reports whether both categories carry the same name, regardless
// of whether they are the same node.
func (c *Category) SameName(other *Category) bool {
	return other != nil && c.name == other.name
}

// Path returns the path from the root of the tree down to c, inclusive.
func (c *Category) Path() Path {
	var segments []string
	for n := c; n != nil; n = n.parent {
		segments = append(segments, n.name)
	}
	slices.Reverse(segments)
	return Path{segments: segments}
}

// Parent returns the parent category, or nil for a root.
func (c *Category) Parent() *Category {
	return c.parent
}

// SetParent sets the parent pointer of c.
//
// A nil parent detaches c from its current parent. A non-nil parent must be
// a different node with a different name. SetParent does not add c to the
// new parent's children; use Add for that. If c was attached elsewhere it is
// detached from that parent first so it is never listed under two parents.
func (c *Category) SetParent(parent *Category) error {
	if parent == nil {
		if c.parent != nil {
			c.parent.removeChild(c)
		}
		c.parent = nil
		return nil
	}
	if parent == c {
		return fmt.Errorf("%w: %q", ErrParentLoop, c.name)
	}
	if c.SameName(parent) {
		return fmt.Errorf("%w: %q", ErrSameNameParent, parent.name)
	}
	if c.parent != nil && c.parent != parent {
		c.parent.removeChild(c)
	}
	c.parent = parent
	return nil
}

// Children returns a copy of the children in insertion order.
func (c *Category) Children() []*Category {
	return slices.Clone(c.children)
}

// SetChildren replaces all children of c.
//
// children may be a []*Category, a []any holding categories, or an
// iter.Seq[*Category]. Anything else fails with ErrChildrenNotIterable, and
// an element that is not a category fails with ErrNotACategory. Name
// collisions are reported as ErrDuplicateName. On error c is unchanged.
func (c *Category) SetChildren(children any) error {
	var list []*Category

	switch v := children.(type) {
	case []*Category:
		list = v
	case []any:
		list = make([]*Category, 0, len(v))
		for _, item := range v {
			child, ok := item.(*Category)
			if !ok {
				return fmt.Errorf("%w: %v", ErrNotACategory, item)
			}
			list = append(list, child)
		}
	case iter.Seq[*Category]:
		if v == nil {
			return ErrChildrenNotIterable
		}
		list = slices.Collect(v)
	case func(func(*Category) bool):
		if v == nil {
			return ErrChildrenNotIterable
		}
		list = slices.Collect(iter.Seq[*Category](v))
	default:
		return fmt.Errorf("%w: got %T", ErrChildrenNotIterable, children)
	}

	seen := make(map[string]struct{}, len(list))
	for _, child := range list {
		if err := c.checkAdopt(child, nil, false); err != nil {
			return err
		}
		if _, dup := seen[child.name]; dup {
			return fmt.Errorf("%w: %q already exists in branch %q", ErrDuplicateName, child.name, c.Path())
		}
		seen[child.name] = struct{}{}
	}

	for _, old := range slices.Clone(c.children) {
		c.removeChild(old)
	}
	for _, child := range list {
		if err := c.addChild(child); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the root of the tree c belongs to.
func (c *Category) Root() *Category {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// IsRoot reports whether c has no parent.
func (c *Category) IsRoot() bool {
	return c.parent == nil
}

// IsLeaf reports whether c has no children.
func (c *Category) IsLeaf() bool {
	return len(c.children) == 0
}

// IsSibling reports whether other is a different node under the same parent.
// Roots have no parent and therefore no siblings.
func (c *Category) IsSibling(other *Category) bool {
	return other != nil && c.parent != nil && c.parent == other.parent && c != other
}

// Walk visits c and its descendants in depth-first pre-order. It stops as
// soon as fn returns false and reports whether the walk ran to completion.
func (c *Category) Walk(fn func(*Category) bool) bool {
	if !fn(c) {
		return false
	}
	for _, child := range c.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if strings.Contains(name, PathSeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, PathSeparator)
	}
	return nil
}
