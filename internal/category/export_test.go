package category

// Exported for tests in package category_test.

func (c *Category) FindStart(path Path) *Category { return c.findStart(path) }

func (c *Category) Find(path Path) *Category { return c.find(path) }

func (c *Category) AddChild(child *Category) error { return c.addChild(child) }

func (c *Category) RemoveChild(child *Category) { c.removeChild(child) }
