package browser

import "strings"

// DefaultResolveDepth is the safety recursion bound used when a caller
// passes a non-positive depth. Host trees are finite in practice but their
// depth is not under our control.
const DefaultResolveDepth = 32

// FindByName searches root's descendants (root itself excluded) for the
// first node whose name equals name case-insensitively. Traversal is
// pre-order in host child order: each child is compared before its own
// subtree is descended, so an earlier sibling's subtree is exhausted before
// a later sibling is compared. maxDepth bounds how many levels below root
// are visited; direct children are at depth 1.
func FindByName(root Item, name string, maxDepth int) (Item, bool) {
	if maxDepth <= 0 {
		maxDepth = DefaultResolveDepth
	}
	return findByName(root, strings.ToLower(name), 1, maxDepth)
}

func findByName(parent Item, lowerName string, depth, maxDepth int) (Item, bool) {
	if depth > maxDepth {
		return nil, false
	}
	for _, item := range parent.Children() {
		if strings.ToLower(item.Name()) == lowerName {
			return item, true
		}
		if found, ok := findByName(item, lowerName, depth+1, maxDepth); ok {
			return found, true
		}
	}
	return nil, false
}

// FindChildContains returns the first direct child of root whose name
// contains name as a case-insensitive substring. Used by the top-level
// instrument lookup before falling back to the exact recursive search.
func FindChildContains(root Item, name string) (Item, bool) {
	lower := strings.ToLower(name)
	for _, item := range root.Children() {
		if strings.Contains(strings.ToLower(item.Name()), lower) {
			return item, true
		}
	}
	return nil, false
}

// FirstLoadable resolves an item to something the host can actually load.
// A loadable node resolves to itself regardless of children. Otherwise all
// direct children are checked for loadability before any subtree is
// descended, so a shallow, earlier-sibling match always wins; that tie-break
// decides which concrete preset gets loaded when a folder name is given.
func FirstLoadable(item Item, maxDepth int) (Item, bool) {
	if maxDepth <= 0 {
		maxDepth = DefaultResolveDepth
	}
	if item.IsLoadable() {
		return item, true
	}
	return firstLoadableChild(item, 1, maxDepth)
}

func firstLoadableChild(parent Item, depth, maxDepth int) (Item, bool) {
	if depth > maxDepth {
		return nil, false
	}
	children := parent.Children()
	for _, child := range children {
		if child.IsLoadable() {
			return child, true
		}
	}
	for _, child := range children {
		if found, ok := firstLoadableChild(child, depth+1, maxDepth); ok {
			return found, true
		}
	}
	return nil, false
}
