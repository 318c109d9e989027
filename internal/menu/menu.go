// Package menu owns the sidebar navigation tree and its
// permission-based filtering.
package menu

// Item is one node of the navigation tree. Title items group the
// entries below them and carry no URL. Permission names the
// capability required to see the item; blank means visible to
// everyone.
type Item struct {
	Key        string
	Icon       string
	Label      string
	URL        string
	Permission string
	ParentKey  string
	IsTitle    bool
	Children   []Item
}

var items = []Item{
	{
		Key:     "general",
		Label:   "Genel",
		IsTitle: true,
	},
	{
		Key:   "profile",
		Icon:  "iconoir-user",
		Label: "Profil",
		URL:   "/dashboard/profile",
	},
	{
		Key:        "groups",
		Icon:       "iconoir-tennis-ball-alt",
		Label:      "Grup Başvurusu",
		URL:        "/dashboard/courses/groups",
		Permission: "group.list",
	},
	{
		Key:     "management",
		Label:   "Yönetim",
		IsTitle: true,
	},
	{
		Key:        "user-management",
		Icon:       "iconoir-group",
		Label:      "Üye Yönetimi",
		Permission: "user.list",
		URL:        "/dashboard/management/users",
	},
	{
		Key:        "group-list",
		Icon:       "fas fa-list-ul",
		Label:      "Grup Yönetimi",
		URL:        "/dashboard/management/groups",
		Permission: "group.list",
	},
	{
		Key:        "sessions",
		Icon:       "fas fa-chalkboard-teacher",
		Label:      "Ders Yönetimi",
		URL:        "/dashboard/management/sessions",
		Permission: "session.list",
	},
	{
		Key:        "membership",
		Icon:       "fas fa-user-plus",
		Label:      "Başvuru Yönetimi",
		URL:        "/dashboard/management/membership",
		Permission: "membership.list",
	},
}

// Items returns a fresh copy of the navigation tree, safe for callers
// to filter and annotate.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// FindByKey walks the tree for the item with the given key.
func FindByKey(menuItems []Item, key string) (Item, bool) {
	if key == "" {
		return Item{}, false
	}
	for _, item := range menuItems {
		if item.Key == key {
			return item, true
		}
		if found, ok := FindByKey(item.Children, key); ok {
			return found, true
		}
	}
	return Item{}, false
}

// FindAllParents collects the keys of every ancestor of the item,
// nearest first. Used to expand the sidebar down to the active entry.
func FindAllParents(menuItems []Item, item Item) []string {
	var parents []string
	parent, ok := FindByKey(menuItems, item.ParentKey)
	if !ok {
		return parents
	}
	parents = append(parents, parent.Key)
	if parent.ParentKey != "" {
		parents = append(parents, FindAllParents(menuItems, parent)...)
	}
	return parents
}

// ItemFromURL finds the menu entry matching the given path, checking
// each item and its immediate children. Used to highlight the active
// entry on navigation.
func ItemFromURL(menuItems []Item, url string) (Item, bool) {
	for _, item := range menuItems {
		if item.URL == url {
			return item, true
		}
		for _, child := range item.Children {
			if child.URL == url {
				return child, true
			}
		}
	}
	return Item{}, false
}

// Filter prunes the tree by the caller's permission set. Enforcement
// is gated behind a feature flag and ships disabled, matching the
// backend which does its own authorization on every request; with the
// flag off every item is visible.
type Filter struct {
	Enforce bool
}

// Apply returns the visible subtree for the given permissions. A
// parent with children survives only when it is visible itself and at
// least one child survived. A title survives only when at least one
// entry below it, up to the next title, survived.
func (f Filter) Apply(menuItems []Item, perms []string) []Item {
	permSet := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		permSet[p] = struct{}{}
	}
	return pruneTitles(f.apply(menuItems, permSet))
}

func pruneTitles(menuItems []Item) []Item {
	var out []Item
	for i, item := range menuItems {
		if !item.IsTitle {
			out = append(out, item)
			continue
		}
		for _, next := range menuItems[i+1:] {
			if next.IsTitle {
				break
			}
			out = append(out, item)
			break
		}
	}
	return out
}

func (f Filter) apply(menuItems []Item, permSet map[string]struct{}) []Item {
	var out []Item
	for _, item := range menuItems {
		if len(item.Children) > 0 {
			children := f.apply(item.Children, permSet)
			if f.visible(item, permSet) && len(children) > 0 {
				item.Children = children
				out = append(out, item)
			}
			continue
		}
		if f.visible(item, permSet) {
			out = append(out, item)
		}
	}
	return out
}

func (f Filter) visible(item Item, permSet map[string]struct{}) bool {
	if !f.Enforce || item.Permission == "" {
		return true
	}
	_, ok := permSet[item.Permission]
	return ok
}
