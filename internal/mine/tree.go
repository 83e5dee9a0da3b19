package mine

// parseTree narrows the candidate clusters for a token sequence in O(depth)
// time. The root level is keyed by token count; up to depth further levels
// branch on the leading tokens. Leaves hold non-owning cluster ids into the
// cluster store.
//
// Tokens the variable predicate flags, and literal branches created once a
// node is at its child cap, share the generic Wildcard child so that
// already-variable values can't fan the tree out.
type parseTree struct {
	depth       int
	maxChildren int
	isVar       VarTokenFunc
	counts      map[int]*treeNode
}

type treeNode struct {
	children   map[string]*treeNode
	clusterIDs []int
}

func newParseTree(depth, maxChildren int, isVar VarTokenFunc) *parseTree {
	return &parseTree{
		depth:       depth,
		maxChildren: maxChildren,
		isVar:       isVar,
		counts:      make(map[int]*treeNode),
	}
}

func newTreeNode() *treeNode {
	return &treeNode{children: make(map[string]*treeNode)}
}

// branchKey maps a token to the key it descends by: itself, or Wildcard
// when it looks like a variable value.
func (t *parseTree) branchKey(token string) string {
	if token == Wildcard || t.isVar(token) {
		return Wildcard
	}
	return token
}

// branchKeys returns the keys a sequence descends by, one per tree level.
// Two sequences with equal branch keys share a leaf.
func (t *parseTree) branchKeys(seq []string) []string {
	n := len(seq)
	if n > t.depth {
		n = t.depth
	}
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = t.branchKey(seq[i])
	}
	return keys
}

// lookup returns the candidate cluster ids for a sequence. On the fast
// path this is the leaf set at the end of the descent. When the descent
// dead-ends on a branch the tree has never seen, the whole token-count
// partition is scanned instead: a novel leading token must still be
// compared against clusters whose templates may generalize over it.
// Either way the ids are candidates only; the caller verifies similarity.
func (t *parseTree) lookup(seq []string) []int {
	node, ok := t.counts[len(seq)]
	if !ok {
		return nil
	}

	for i := 0; i < t.depth && i < len(seq); i++ {
		key := t.branchKey(seq[i])
		if child, ok := node.children[key]; ok {
			node = child
			continue
		}
		if wc, ok := node.children[Wildcard]; ok {
			node = wc
			continue
		}
		return collect(node, nil)
	}

	return node.clusterIDs
}

// insert registers a cluster id at the leaf for this sequence, creating
// any missing nodes along the descent path. A missing literal branch falls
// back to an existing wildcard branch; a node at its child cap absorbs new
// literals into the wildcard branch instead of growing.
func (t *parseTree) insert(seq []string, clusterID int) {
	node, ok := t.counts[len(seq)]
	if !ok {
		node = newTreeNode()
		t.counts[len(seq)] = node
	}

	for i := 0; i < t.depth && i < len(seq); i++ {
		key := t.branchKey(seq[i])
		if child, ok := node.children[key]; ok {
			node = child
			continue
		}
		if wc, ok := node.children[Wildcard]; ok {
			node = wc
			continue
		}
		if key != Wildcard && len(node.children) >= t.maxChildren {
			key = Wildcard
		}
		child := newTreeNode()
		node.children[key] = child
		node = child
	}

	node.clusterIDs = append(node.clusterIDs, clusterID)
}

// remove deletes a cluster id from whatever leaf holds it within one
// token-count partition, pruning nodes left empty. Used when template
// generalization changes a cluster's branching tokens and it must be
// re-linked along its new path.
func (t *parseTree) remove(length, clusterID int) {
	root, ok := t.counts[length]
	if !ok {
		return
	}
	removeFrom(root, clusterID)
	if len(root.children) == 0 && len(root.clusterIDs) == 0 {
		delete(t.counts, length)
	}
}

func removeFrom(node *treeNode, clusterID int) bool {
	for i, id := range node.clusterIDs {
		if id == clusterID {
			node.clusterIDs = append(node.clusterIDs[:i], node.clusterIDs[i+1:]...)
			return true
		}
	}
	for key, child := range node.children {
		if removeFrom(child, clusterID) {
			if len(child.children) == 0 && len(child.clusterIDs) == 0 {
				delete(node.children, key)
			}
			return true
		}
	}
	return false
}

// collect gathers every cluster id in a subtree.
func collect(node *treeNode, ids []int) []int {
	ids = append(ids, node.clusterIDs...)
	for _, child := range node.children {
		ids = collect(child, ids)
	}
	return ids
}
