package browser

import "strings"

// SearchResult is one search hit: the category it was found under and the
// matching item's name. Results are ephemeral, produced per call.
type SearchResult struct {
	Category Category
	Name     string
}

// Search collects descendants of the blanket-search categories whose names
// contain query as a case-insensitive substring. Traversal is depth-bounded:
// nodes deeper than the search depth are not visited at all, which bounds
// cost on deep trees. Matches are truncated per category first, then the
// concatenation (in fixed category order) is truncated to the total cap.
// The returned slice is never nil.
func (b *Browser) Search(query string) []SearchResult {
	return b.SearchWithLimits(query, b.Limits())
}

// SearchWithLimits runs Search under caller-supplied limits. Callers may
// tighten the active limits per call but not exceed them; non-positive
// fields fall back to the active values.
func (b *Browser) SearchWithLimits(query string, limits Limits) []SearchResult {
	active := b.Limits()
	if limits.PerCategoryCap <= 0 || limits.PerCategoryCap > active.PerCategoryCap {
		limits.PerCategoryCap = active.PerCategoryCap
	}
	if limits.TotalCap <= 0 || limits.TotalCap > active.TotalCap {
		limits.TotalCap = active.TotalCap
	}
	if limits.SearchDepth <= 0 || limits.SearchDepth > active.SearchDepth {
		limits.SearchDepth = active.SearchDepth
	}

	results := make([]SearchResult, 0, limits.TotalCap)
	lower := strings.ToLower(query)

	for _, category := range searchCategories {
		if len(results) >= limits.TotalCap {
			break
		}
		root, ok := b.host.CategoryRoot(category)
		if !ok {
			continue
		}

		matches := make([]string, 0, limits.PerCategoryCap)
		collectMatches(root, lower, 1, limits.SearchDepth, limits.PerCategoryCap, &matches)

		for _, name := range matches {
			if len(results) >= limits.TotalCap {
				break
			}
			results = append(results, SearchResult{Category: category, Name: name})
		}
	}

	b.logger.WithField("query", query).WithField("results", len(results)).Debug("Catalog search complete")
	return results
}

// collectMatches appends matching descendant names in pre-order until the
// cap is reached. Direct children of the root are at depth 1.
func collectMatches(parent Item, lowerQuery string, depth, maxDepth, limit int, out *[]string) {
	if depth > maxDepth {
		return
	}
	for _, item := range parent.Children() {
		if len(*out) >= limit {
			return
		}
		if strings.Contains(strings.ToLower(item.Name()), lowerQuery) {
			*out = append(*out, item.Name())
			if len(*out) >= limit {
				return
			}
		}
		collectMatches(item, lowerQuery, depth+1, maxDepth, limit, out)
	}
}

// FlattenResults interleaves results into the flat wire shape
// [category1, name1, category2, name2, ...]. This shaping belongs to the
// serialization boundary; everything internal stays as pairs.
func FlattenResults(results []SearchResult) []string {
	flat := make([]string, 0, len(results)*2)
	for _, r := range results {
		flat = append(flat, string(r.Category), r.Name)
	}
	return flat
}
