package forms

import (
	"errors"

	"pickfoo-owner/internal/domain"
)

// ErrCategoryCycle reports a malformed parent chain. The rows built before
// the cycle was hit are still returned; the cycle itself is reported, not
// repaired, because the backend owns the tree's integrity.
var ErrCategoryCycle = errors.New("forms: category parent chain contains a cycle")

// TreeRow is one rendered category line: the node and its indent depth.
type TreeRow struct {
	Category domain.Category
	Depth    int
}

// RenderCategoryTree flattens the category forest for display: roots in
// input order, each subtree depth-first with children indented one level.
// A visited set guards the walk so a parent cycle cannot recurse unbounded.
func RenderCategoryTree(cats []domain.Category) ([]TreeRow, error) {
	children := make(map[string][]domain.Category)
	var roots []domain.Category
	for _, c := range cats {
		if c.Parent == nil || *c.Parent == "" {
			roots = append(roots, c)
			continue
		}
		children[*c.Parent] = append(children[*c.Parent], c)
	}

	var (
		rows    []TreeRow
		visited = make(map[string]bool)
		cycle   bool
	)
	var walk func(c domain.Category, depth int)
	walk = func(c domain.Category, depth int) {
		if visited[c.ID] {
			cycle = true
			return
		}
		visited[c.ID] = true
		rows = append(rows, TreeRow{Category: c, Depth: depth})
		for _, child := range children[c.ID] {
			walk(child, depth+1)
		}
	}
	for _, root := range roots {
		walk(root, 0)
	}

	// Nodes never reached from a root sit on a broken parent chain. Follow
	// each chain once to tell a genuine cycle from a plain orphan.
	byID := make(map[string]domain.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	for _, c := range cats {
		if visited[c.ID] {
			continue
		}
		seen := map[string]bool{c.ID: true}
		cur := c
		for cur.Parent != nil && *cur.Parent != "" {
			parent, ok := byID[*cur.Parent]
			if !ok {
				break
			}
			if seen[parent.ID] {
				cycle = true
				break
			}
			seen[parent.ID] = true
			cur = parent
		}
	}

	if cycle {
		return rows, ErrCategoryCycle
	}
	return rows, nil
}
