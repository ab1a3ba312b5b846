package browser

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stagecraft/catalogd/errors"
)

// Limits bounds traversal depth and search result shaping.
type Limits struct {
	PerCategoryCap int
	TotalCap       int
	SearchDepth    int
	ResolveDepth   int
}

// DefaultLimits returns the stock limits.
func DefaultLimits() Limits {
	return Limits{
		PerCategoryCap: 10,
		TotalCap:       50,
		SearchDepth:    3,
		ResolveDepth:   DefaultResolveDepth,
	}
}

// Browser navigates the host's catalog. It holds no catalog state of its
// own: every operation re-walks the host tree from the relevant category
// root. The only state that survives a call is the hotswap session.
type Browser struct {
	host   Host
	logger *logrus.Entry

	mu      sync.Mutex
	limits  Limits
	hotswap hotswapSession
}

// New creates a Browser over the given host.
func New(host Host, logger *logrus.Entry, limits Limits) *Browser {
	if limits.PerCategoryCap <= 0 || limits.TotalCap <= 0 || limits.SearchDepth <= 0 {
		limits = DefaultLimits()
	}
	if limits.ResolveDepth <= 0 {
		limits.ResolveDepth = DefaultResolveDepth
	}
	return &Browser{
		host:   host,
		logger: logger,
		limits: limits,
	}
}

// SetLimits swaps the active limits, e.g. on config reload.
func (b *Browser) SetLimits(limits Limits) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if limits.ResolveDepth <= 0 {
		limits.ResolveDepth = DefaultResolveDepth
	}
	b.limits = limits
}

// SetHotswapClearAfterLoad controls whether a successful hotswap load
// disarms the session. The host's native behavior leaves it armed.
func (b *Browser) SetHotswapClearAfterLoad(clear bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hotswap.clearAfterLoad = clear
}

// Limits returns the active limits.
func (b *Browser) Limits() Limits {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limits
}

// categoryRoot resolves a category token to its host root.
func (b *Browser) categoryRoot(token string) (Item, Category, error) {
	category, ok := CategoryFor(token)
	if !ok {
		return nil, "", errors.UnknownCategory(token)
	}
	root, ok := b.host.CategoryRoot(category)
	if !ok {
		return nil, "", errors.UnknownCategory(token).
			WithDetail("reason", "host exposes no tree for this category")
	}
	return root, category, nil
}

// ListCategories returns every category token in fixed order.
func (b *Browser) ListCategories() []string {
	tokens := make([]string, 0, len(Categories))
	for _, c := range Categories {
		tokens = append(tokens, string(c))
	}
	return tokens
}

// ListChildren walks from a category root along the given path of child
// names (each step resolved case-insensitively against direct children) and
// returns the names of the final node's children in host order. A leaf
// yields an empty, non-nil slice so callers can distinguish "no children"
// from "not applicable".
func (b *Browser) ListChildren(categoryToken string, path []string) ([]string, error) {
	node, _, err := b.categoryRoot(categoryToken)
	if err != nil {
		return nil, err
	}

	for _, step := range path {
		next, ok := directChild(node, step)
		if !ok {
			return nil, errors.ItemNotFound(step).WithDetail("category", categoryToken)
		}
		node = next
	}

	children := node.Children()
	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.Name())
	}
	return names, nil
}

// directChild finds a direct child by case-insensitive exact name.
func directChild(parent Item, name string) (Item, bool) {
	return FindByName(parent, name, 1)
}
