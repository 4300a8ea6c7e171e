package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
)

// The category and product tables are self-referencing trees with no
// store-level guard against a record becoming its own ancestor. The walkers
// below keep a visited set and fail with the tree-cycle error instead of
// looping forever, and parent reassignments are checked for acyclicity
// before they are written.

// fetchParentFunc reports the parent ID of a node, or nil for a root.
type fetchParentFunc func(ctx context.Context, id uint) (*uint, error)

// fetchChildrenFunc reports the IDs of all direct children of the given nodes.
type fetchChildrenFunc func(ctx context.Context, parentIDs []uint) ([]uint, error)

// collectAncestors walks parent references from start up to the root and
// returns the chain of ancestor IDs, nearest parent first.
func collectAncestors(ctx context.Context, start uint, fetchParent fetchParentFunc) ([]uint, error) {
	visited := map[uint]struct{}{start: {}}
	chain := make([]uint, 0)

	current := start
	for {
		parentID, err := fetchParent(ctx, current)
		if err != nil {
			return nil, err
		}
		if parentID == nil {
			return chain, nil
		}
		if _, seen := visited[*parentID]; seen {
			return nil, domainerrors.ErrTreeCycleDetected
		}

		visited[*parentID] = struct{}{}
		chain = append(chain, *parentID)
		current = *parentID
	}
}

// collectDescendants gathers every node whose parent chain includes start,
// breadth-first. A node encountered twice means the chain loops.
func collectDescendants(ctx context.Context, start uint, fetchChildren fetchChildrenFunc) ([]uint, error) {
	visited := map[uint]struct{}{start: {}}
	all := make([]uint, 0)

	frontier := []uint{start}
	for len(frontier) > 0 {
		children, err := fetchChildren(ctx, frontier)
		if err != nil {
			return nil, err
		}

		next := make([]uint, 0, len(children))
		for _, child := range children {
			if _, seen := visited[child]; seen {
				return nil, domainerrors.ErrTreeCycleDetected
			}

			visited[child] = struct{}{}
			all = append(all, child)
			next = append(next, child)
		}
		frontier = next
	}

	return all, nil
}

// ensureAcyclicParent verifies that attaching node id under newParent keeps
// the tree acyclic: the new parent must not be the node itself or any of its
// descendants, and the new parent's own chain must terminate.
func ensureAcyclicParent(ctx context.Context, id uint, newParent *uint, fetchParent fetchParentFunc) error {
	if newParent == nil {
		return nil
	}
	if *newParent == id {
		return domainerrors.ErrTreeCycleDetected
	}

	chain, err := collectAncestors(ctx, *newParent, fetchParent)
	if err != nil {
		return err
	}

	for _, ancestor := range chain {
		if ancestor == id {
			return domainerrors.ErrTreeCycleDetected
		}
	}

	return nil
}
