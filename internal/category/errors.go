package category

import "errors"

// Tree errors. Callers branch on these with errors.Is; the returned errors
// wrap them with the offending name or path.
var (
	ErrNotACategory         = errors.New("not a category")
	ErrParentLoop           = errors.New("category cannot be its own parent")
	ErrSameNameParent       = errors.New("parent has the same name as the category")
	ErrChildrenNotIterable  = errors.New("children must be a list of categories")
	ErrDuplicateName        = errors.New("duplicate category name")
	ErrRootDelete           = errors.New("root category cannot be deleted")
	ErrRootMove             = errors.New("root category cannot be moved")
	ErrCategoryDoesNotExist = errors.New("category does not exist")
	ErrInvalidPath          = errors.New("invalid path")
	ErrPathType             = errors.New("path must be a string, a list of strings or a Path")
	ErrInvalidDepth         = errors.New("invalid depth")
	ErrInvalidName          = errors.New("invalid category name")
)
