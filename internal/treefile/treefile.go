// Package treefile reads and writes category trees as YAML documents.
//
// A document is one node, recursively:
//
//	name: food
//	description: Things to eat
//	children:
//	  - name: fruits
//	    children:
//	      - name: apple
package treefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/cattree/internal/category"
)

// ErrEmptyDocument is returned when a document holds no tree.
var ErrEmptyDocument = errors.New("tree document is empty")

// Node is the YAML shape of one category.
type Node struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Image       string `yaml:"image,omitempty"`
	Children    []Node `yaml:"children,omitempty"`
}

// Decode reads one tree document from r. The tree is assembled with the
// category package, so naming conflicts fail with its errors.
func Decode(r io.Reader) (*category.Category, error) {
	var doc Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to parse tree document: %w", err)
	}
	return doc.Build()
}

// Encode writes the tree rooted at root to w.
func Encode(w io.Writer, root *category.Category) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromCategory(root)); err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	return enc.Close()
}

// ReadFile decodes the tree stored in the file at path.
func ReadFile(path string) (*category.Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes the tree rooted at root into the file at path.
func WriteFile(path string, root *category.Category) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, root); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Build creates the category tree described by n.
func (n Node) Build() (*category.Category, error) {
	node, err := category.New(n.Name,
		category.WithDescription(n.Description),
		category.WithImage(n.Image),
	)
	if err != nil {
		return nil, err
	}
	for _, child := range n.Children {
		c, err := child.Build()
		if err != nil {
			return nil, err
		}
		if err := node.Add(c); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// FromCategory converts the subtree rooted at c.
func FromCategory(c *category.Category) Node {
	n := Node{
		Name:        c.Name(),
		Description: c.Description,
		Image:       c.Image,
	}
	for _, child := range c.Children() {
		n.Children = append(n.Children, FromCategory(child))
	}
	return n
}
