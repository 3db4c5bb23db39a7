package category

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// UpdateFields holds the attributes Update may change. Empty Description and
// Image leave the current values in place; a nil Name leaves the name alone.
type UpdateFields struct {
	Name        *string
	Description string
	Image       string
}

// Leaves returns every descendant of c without children, left to right in
// insertion order. A childless c is its own only leaf.
func (c *Category) Leaves() []*Category {
	if len(c.children) == 0 {
		return []*Category{c}
	}
	var leaves []*Category
	for _, child := range c.children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// Get resolves path anywhere below c, c included.
//
// The first segment is located with a depth-first pre-order search; the
// first match wins even if the name occurs elsewhere. The remaining segments
// must then name immediate children one level at a time, so "food/apple"
// does not resolve when apple sits under food/fruits.
//
// An unresolved path returns nil and no error, like a missing row. Only a
// malformed path is an error.
func (c *Category) Get(path any) (*Category, error) {
	p, err := NewPath(path)
	if err != nil {
		return nil, err
	}
	start := c.findStart(p)
	if start == nil {
		return nil, nil
	}
	return start.find(p), nil
}

// Add attaches child under c.
func (c *Category) Add(child *Category) error {
	return c.addChild(child)
}

// AddTo attaches child under the category at path.
func (c *Category) AddTo(path any, child *Category) error {
	parent, err := c.resolve(path)
	if err != nil {
		return err
	}
	return parent.addChild(child)
}

// Delete detaches the category at path from its parent. The detached
// subtree stays intact and becomes a tree of its own.
func (c *Category) Delete(path any) error {
	target, err := c.resolve(path)
	if err != nil {
		return err
	}
	if target.IsRoot() {
		return fmt.Errorf("%w: %q", ErrRootDelete, target.name)
	}

	from := target.Path()
	target.parent.removeChild(target)
	slog.Debug("deleted category", "path", from)
	return nil
}

// Move relocates the category at path under the category at newParentPath.
//
// All checks run before anything changes: a move that would break a naming
// rule fails with ErrDuplicateName and leaves the node where it was. This
// also rejects moving a category below one of its own descendants.
func (c *Category) Move(path, newParentPath any) error {
	dest, err := NewPath(newParentPath)
	if err != nil {
		return err
	}
	node, err := c.resolve(path)
	if err != nil {
		return err
	}
	if node.IsRoot() {
		return fmt.Errorf("%w: %q", ErrRootMove, node.name)
	}
	parent, err := c.resolve(dest)
	if err != nil {
		return err
	}
	if err := parent.checkAdopt(node, node, true); err != nil {
		return err
	}

	from := node.Path()
	node.parent.removeChild(node)
	if err := parent.addChild(node); err != nil {
		return err
	}
	slog.Debug("moved category", "from", from, "to", node.Path())
	return nil
}

// Update changes the description, image and name of c.
//
// A non-empty Description or Image is applied first and stays applied even
// when the rename is refused. A new name may not appear anywhere on the path
// of c or among its descendants. Siblings are matched loosely: the rename is
// refused when the new name is a substring of a sibling's name, so "app" is
// refused next to "apple". A refused rename leaves the name unchanged.
func (c *Category) Update(fields UpdateFields) error {
	if fields.Description != "" {
		c.Description = fields.Description
	}
	if fields.Image != "" {
		c.Image = fields.Image
	}

	if fields.Name == nil {
		return nil
	}
	if err := c.checkRename(*fields.Name); err != nil {
		return err
	}
	old := c.name
	c.name = *fields.Name
	slog.Debug("renamed category", "from", old, "to", c.name)
	return nil
}

// Size counts c and all of its descendants.
func (c *Category) Size() int {
	size := 1
	for _, child := range c.children {
		size += child.Size()
	}
	return size
}

// SizeOf counts the subtree rooted at path.
func (c *Category) SizeOf(path any) (int, error) {
	node, err := c.resolve(path)
	if err != nil {
		return 0, err
	}
	return node.Size(), nil
}

// GetByDepth returns the categories depth levels below c, in child order.
// Depth 0 is c itself. Negative depths fail with ErrInvalidDepth.
func (c *Category) GetByDepth(depth int) ([]*Category, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidDepth, depth)
	}
	switch depth {
	case 0:
		return []*Category{c}, nil
	case 1:
		return c.Children(), nil
	}

	var categories []*Category
	for _, child := range c.children {
		below, err := child.GetByDepth(depth - 1)
		if err != nil {
			return nil, err
		}
		categories = append(categories, below...)
	}
	return categories, nil
}

// InsertParent splices parent between c and its current parent. parent takes
// the slot c held among its former siblings, and c becomes a child of parent.
// For a root, parent simply becomes the new root.
func (c *Category) InsertParent(parent *Category) error {
	if parent == nil {
		return fmt.Errorf("%w: got nil", ErrNotACategory)
	}
	if parent == c {
		return fmt.Errorf("%w: %q", ErrParentLoop, c.name)
	}
	if c.SameName(parent) {
		return fmt.Errorf("%w: %q", ErrSameNameParent, parent.name)
	}

	grand := c.parent
	if grand != nil {
		if err := grand.checkAdopt(parent, c, true); err != nil {
			return err
		}
	}
	if clash := c.findName(parent.name); clash != nil {
		return fmt.Errorf("%w: %q already exists below %q", ErrDuplicateName, parent.name, c.Path())
	}
	for _, child := range parent.children {
		if child.name == c.name {
			return fmt.Errorf("%w: %q already exists in branch %q", ErrDuplicateName, c.name, parent.Path())
		}
	}

	if parent.parent != nil {
		parent.parent.removeChild(parent)
	}
	if grand != nil {
		i := slices.Index(grand.children, c)
		grand.children[i] = parent
		parent.parent = grand
	}
	parent.children = append(parent.children, c)
	c.parent = parent
	return nil
}

// resolve is Get for operations that need the category to exist.
func (c *Category) resolve(path any) (*Category, error) {
	p, err := NewPath(path)
	if err != nil {
		return nil, err
	}
	node, err := c.Get(p)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryDoesNotExist, p)
	}
	return node, nil
}

// findStart returns the first category, in pre-order, named after the root
// segment of path.
func (c *Category) findStart(path Path) *Category {
	if c.name == path.Root() {
		return c
	}
	for _, child := range c.children {
		if found := child.findStart(path); found != nil {
			return found
		}
	}
	return nil
}

// find follows path from c through immediate children only.
func (c *Category) find(path Path) *Category {
	if path.Len() == 0 || c.name != path.Root() {
		return nil
	}
	if path.Len() == 1 {
		return c
	}
	rest := path.tail()
	for _, child := range c.children {
		if found := child.find(rest); found != nil {
			return found
		}
	}
	return nil
}

// findName returns the first node in the subtree of c named name.
func (c *Category) findName(name string) *Category {
	var found *Category
	c.Walk(func(n *Category) bool {
		if n.name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// checkAdopt reports whether child, with its whole subtree, could be attached
// under c without repeating a name on any path. ignore is a child of c that
// does not count as a sibling, used when a node moves within its parent.
func (c *Category) checkAdopt(child, ignore *Category, siblings bool) error {
	if child == nil {
		return fmt.Errorf("%w: got nil", ErrNotACategory)
	}

	branch := c.Path()
	var clash string
	child.Walk(func(n *Category) bool {
		if branch.Contains(n.name) {
			clash = n.name
			return false
		}
		return true
	})
	if clash != "" {
		return fmt.Errorf("%w: %q already exists in branch %q", ErrDuplicateName, clash, branch)
	}

	if siblings {
		for _, sibling := range c.children {
			if sibling != ignore && sibling.name == child.name {
				return fmt.Errorf("%w: %q already exists in branch %q", ErrDuplicateName, child.name, branch)
			}
		}
	}
	return nil
}

func (c *Category) checkRename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	branch := c.Path()
	if branch.Contains(name) {
		return fmt.Errorf("%w: %q already exists in branch %q", ErrDuplicateName, name, branch)
	}
	for _, child := range c.children {
		if child.findName(name) != nil {
			return fmt.Errorf("%w: %q already exists below %q", ErrDuplicateName, name, branch)
		}
	}
	if c.parent != nil {
		for _, sibling := range c.parent.children {
			if sibling != c && strings.Contains(sibling.name, name) {
				return fmt.Errorf("%w: %q matches sibling %q", ErrDuplicateName, name, sibling.name)
			}
		}
	}
	return nil
}

// addChild attaches child under c after the naming checks. A child that is
// still attached elsewhere is detached from its old parent first.
func (c *Category) addChild(child *Category) error {
	if err := c.checkAdopt(child, nil, true); err != nil {
		return err
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	c.children = append(c.children, child)
	child.parent = c
	return nil
}

// removeChild detaches child from c. It does nothing if child is not a
// child of c.
func (c *Category) removeChild(child *Category) {
	i := slices.Index(c.children, child)
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	child.parent = nil
}
