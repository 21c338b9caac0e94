package nav

import (
	"strings"
	"sync"
)

// PermissionChecker is the access guard the composer filters through.
type PermissionChecker interface {
	HasPermission(key string) bool
}

// Composer builds the visible menu tree for the current session and owns the
// transient open/closed state of submenus. Open state is pure UI state and
// has no bearing on authorization.
type Composer struct {
	guard PermissionChecker
	menu  []Item

	mu   sync.Mutex
	open map[string]bool
}

func NewComposer(guard PermissionChecker, menu []Item) *Composer {
	if menu == nil {
		menu = DefaultMenu()
	}
	return &Composer{
		guard: guard,
		menu:  menu,
		open:  make(map[string]bool),
	}
}

// Visible filters the static tree through the guard. A leaf shows iff its
// permission is granted. A group shows iff its own gate passes and at least
// one child survives filtering.
func (c *Composer) Visible() []Item {
	var visible []Item
	for _, item := range c.menu {
		if !item.IsGroup() {
			if c.guard.HasPermission(item.Permission) {
				visible = append(visible, item)
			}
			continue
		}

		if !c.guard.HasPermission(item.Permission) {
			continue
		}

		var children []Item
		for _, child := range item.Children {
			if c.guard.HasPermission(child.Permission) {
				children = append(children, child)
			}
		}
		if len(children) == 0 {
			continue
		}

		group := item
		group.Children = children
		visible = append(visible, group)
	}
	return visible
}

// SeedOpen opens every group containing the active path. Groups the path
// does not touch keep their last-known state.
func (c *Composer) SeedOpen(activePath string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.menu {
		if !item.IsGroup() || item.Key == "" {
			continue
		}
		for _, child := range item.Children {
			if child.Path != "" && strings.HasPrefix(activePath, child.Path) {
				c.open[item.Key] = true
				break
			}
		}
	}
}

// Toggle flips a group's open state.
func (c *Composer) Toggle(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open[key] = !c.open[key]
}

func (c *Composer) IsOpen(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open[key]
}

// OpenState returns a copy of the open/closed map.
func (c *Composer) OpenState() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := make(map[string]bool, len(c.open))
	for k, v := range c.open {
		state[k] = v
	}
	return state
}
