package model

import "time"

// TreeInfo summarizes a stored category tree.
type TreeInfo struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	RootName  string
	Size      int
}
