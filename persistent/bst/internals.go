package bst

/*
Remarks:
--------

- All functions in here take an immutable sub-tree and return a new sub-tree. Nodes on the
  search path are re-created, every other node is linked into the result as-is.

- A nil *Node denotes the empty sub-tree.

- Errors are returned before any new node is linked to a tree root, so a failed operation
  never becomes visible.

*/

// find locates key in the sub-tree rooted at node. Returns nil if key is not found.
func find[K any, V any](node *Node[K, V], key K, cmp func(K, K) int) *Node[K, V] {
	if node == nil {
		return nil
	}
	c := cmp(key, node.key)
	switch {
	case c < 0:
		return find(node.left, key, cmp)
	case c > 0:
		return find(node.right, key, cmp)
	}
	return node
}

// add returns the sub-tree resulting from adding key and value to node.
// If key is already present, ErrDuplicateKey is returned together with a nil tree.
func add[K any, V any](node *Node[K, V], key K, value V, cmp func(K, K) int) (*Node[K, V], error) {
	if node == nil {
		return newNode(key, value, nil, nil), nil
	}
	c := cmp(key, node.key)
	switch {
	case c < 0:
		left, err := add(node.left, key, value, cmp)
		if err != nil {
			return nil, err
		}
		return node.withLeft(left), nil
	case c > 0:
		right, err := add(node.right, key, value, cmp)
		if err != nil {
			return nil, err
		}
		return node.withRight(right), nil
	}
	return nil, ErrDuplicateKey
}

// remove returns the sub-tree resulting from removing key from node, together with
// a flag telling if key has been found.
func remove[K any, V any](node *Node[K, V], key K, cmp func(K, K) int) (*Node[K, V], bool) {
	if node == nil {
		return nil, false
	}
	c := cmp(key, node.key)
	switch {
	case c < 0:
		left, found := remove(node.left, key, cmp)
		if !found {
			return node, false
		}
		return node.withLeft(left), true
	case c > 0:
		right, found := remove(node.right, key, cmp)
		if !found {
			return node, false
		}
		return node.withRight(right), true
	}
	tracer().Debugf("remove: found node %s", node)
	switch {
	case node.left == nil:
		return node.right, true // covers leafs as well
	case node.right == nil:
		return node.left, true
	}
	// two children: promote the in-order successor
	right, min := removeMin(node.right)
	tracer().Debugf("remove: replacing %s with successor ⟨%v:%v⟩", node, min.Key, min.Value)
	return newNode(min.Key, min.Value, node.left, right), true
}

// removeMin removes the minimum key from a non-empty sub-tree. It returns the
// rebuilt sub-tree and the key/value pair extracted.
func removeMin[K any, V any](node *Node[K, V]) (*Node[K, V], Entry[K, V]) {
	assertThat(node != nil, "attempt to remove minimum from empty sub-tree")
	if node.left == nil {
		return node.right, node.entry()
	}
	left, min := removeMin(node.left)
	return node.withLeft(left), min
}

// leftmost returns the node holding the minimum key, or nil for an empty sub-tree.
func leftmost[K any, V any](node *Node[K, V]) *Node[K, V] {
	for node != nil && node.left != nil {
		node = node.left
	}
	return node
}

// rightmost returns the node holding the maximum key, or nil for an empty sub-tree.
func rightmost[K any, V any](node *Node[K, V]) *Node[K, V] {
	for node != nil && node.right != nil {
		node = node.right
	}
	return node
}

// walk visits the sub-tree in-order, stopping as soon as f returns false.
func walk[K any, V any](node *Node[K, V], f func(K, V) bool) bool {
	if node == nil {
		return true
	}
	if !walk(node.left, f) {
		return false
	}
	if !f(node.key, node.value) {
		return false
	}
	return walk(node.right, f)
}

func height[K any, V any](node *Node[K, V]) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}

// --- Helpers ---------------------------------------------------------------

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
