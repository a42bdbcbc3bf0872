// Package menu is the pluggable module framework behind the
// interactive CLI. Modules are composed through an explicit ordered
// registry and the MenuModule interface; there is no filesystem or
// reflection-based discovery.
package menu

import (
	"log/slog"
	"sort"
)

// MenuItem is one selectable action inside a module.
type MenuItem struct {
	ID       string
	Label    string
	Priority int
}

// MenuModule is the contract every menu module satisfies.
type MenuModule interface {
	// Name is the human-readable module name.
	Name() string
	// Items returns the module's actions.
	Items() []MenuItem
	// Execute runs the action with the given item ID.
	Execute(id string) error
	// Setup performs dependency checks; a failing module is dropped
	// from the registry.
	Setup() error
}

// BuildRegistry filters candidates through their Setup checks, keeping
// order. Setup failures are logged, not fatal.
func BuildRegistry(candidates ...MenuModule) []MenuModule {
	var modules []MenuModule
	for _, m := range candidates {
		if err := m.Setup(); err != nil {
			slog.Warn("module setup failed, skipping", "module", m.Name(), "error", err)
			continue
		}
		modules = append(modules, m)
	}
	return modules
}

// SortedItems returns a module's items in priority order.
func SortedItems(m MenuModule) []MenuItem {
	items := m.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority < items[j].Priority
	})
	return items
}
