// Package dfs implements an iterative depth-first walk and the connectivity
// decompositions built on it for undirected core.Graph instances.
//
// What:
//
//   - Walk: explores as far as possible along each branch before
//     backtracking, over every tree of the forest. A Visitor receives
//     Root, Discover, Tree, Back and Finish calls.
//   - Components: connected vertex sets, one DFS tree each.
//   - CircuitRank: |E| − |V| + #components, the cycle-space dimension.
//   - BiconnectedComponents: edge sets of the blocks, via low-link numbering
//     on Walk's hooks and an explicit edge stack. Parallel edges stay
//     together; loops are skipped.
//
// Key Types & Constants:
//
//   - White, Gray, Black (visitation markers)
//   - Visitor: the hooks of a walk
//   - Step: the tree edge and parent a vertex was discovered through
//
// Complexity:
//
//   - Walk:                   Time O(V+E), Memory O(V)
//   - Components:             Time O(V+E), Memory O(V)
//   - BiconnectedComponents:  Time O(V+E), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - hook errors             wrapped with the hook name and vertex
package dfs
