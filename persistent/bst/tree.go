package bst

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/fpdict/maybe"
	"golang.org/x/exp/constraints"
)

// Tree is an immutable binary search tree, mapping unique keys to values.
// Trees are values: every modification returns a new tree, leaving the receiver
// untouched. Unmodified sub-trees are shared between the two.
//
// Trees must be created with Immutable or ImmutableFunc; the zero value has no
// ordering for keys and panics on use.
type Tree[K any, V any] struct {
	root  *Node[K, V]
	size  int
	props *props[K]
}

// Immutable constructs an empty tree for an ordered key type, with options if you need any.
// Use it like this:
//
//     tree := bst.Immutable[int, string]()
//     tree, _ = tree.With(42, "Galaxy")
//     value, found, _ := tree.Find(42)   // returns "Galaxy", true
//
func Immutable[K constraints.Ordered, V any](opts ...Option[K]) Tree[K, V] {
	return Tree[K, V]{props: newProps(compareOrdered[K], opts)}
}

// ImmutableFunc constructs an empty tree with keys ordered by cmp. cmp(a, b) must return
// a negative number for a < b, zero for a = b and a positive number for a > b.
func ImmutableFunc[K any, V any](cmp func(K, K) int, opts ...Option[K]) Tree[K, V] {
	return Tree[K, V]{props: newProps(cmp, opts)}
}

// --- API -------------------------------------------------------------------

// Find locates a key in a tree, if present, and returns the value associated with the key.
// If key is not found, the zero value for V will be returned, together with found=false.
func (tree Tree[K, V]) Find(key K) (value V, found bool, err error) {
	if err = tree.checkKey(key); err != nil {
		return
	}
	if node := find(tree.root, key, tree.props.compare); node != nil {
		return node.value, true, nil
	}
	return
}

// With returns a copy of a tree with a new key inserted, which is associated with value.
// If key is already present in tree, ErrDuplicateKey is returned and the
// value associated with key is not replaced.
// Whenever an error is returned, the tree returned is the receiver.
func (tree Tree[K, V]) With(key K, value V) (Tree[K, V], error) {
	if err := tree.checkKey(key); err != nil {
		return tree, err
	}
	root, err := add(tree.root, key, value, tree.props.compare)
	if err != nil {
		tracer().Infof("insert: key %v already present", key)
		return tree, errors.Wrapf(err, "insert key %v", key)
	}
	tracer().Debugf("insert: new root = %s", root)
	return tree.withRoot(root, tree.size+1), nil
}

// WithDeleted returns a copy of a tree with key deleted, if present, together with a flag
// telling whether key has been found.
// If key is not found, tree is returned unchanged.
func (tree Tree[K, V]) WithDeleted(key K) (Tree[K, V], bool, error) {
	if err := tree.checkKey(key); err != nil {
		return tree, false, err
	}
	root, found := remove(tree.root, key, tree.props.compare)
	if !found {
		tracer().Debugf("delete: key %v not found", key)
		return tree, false, nil
	}
	tracer().Debugf("delete: new root = %s", root)
	return tree.withRoot(root, tree.size-1), true, nil
}

// Len returns the number of keys in the tree.
func (tree Tree[K, V]) Len() int {
	return tree.size
}

// IsEmpty is true for a tree without any keys.
func (tree Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the root node of a tree, or nil for an empty tree. Clients may use
// it to traverse the shape of the tree, e.g. for drawing it.
func (tree Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height returns the number of nodes on the longest path from the root to a leaf.
func (tree Tree[K, V]) Height() int {
	return height(tree.root)
}

// Min returns the entry with the smallest key, if the tree is not empty.
func (tree Tree[K, V]) Min() maybe.Maybe[Entry[K, V]] {
	if tree.root == nil {
		return maybe.Nothing[Entry[K, V]]()
	}
	return maybe.Just(leftmost(tree.root).entry())
}

// Max returns the entry with the largest key, if the tree is not empty.
func (tree Tree[K, V]) Max() maybe.Maybe[Entry[K, V]] {
	if tree.root == nil {
		return maybe.Nothing[Entry[K, V]]()
	}
	return maybe.Just(rightmost(tree.root).entry())
}

// Walk calls f for every key/value pair of the tree, in ascending order of keys.
// Walking stops as soon as f returns false.
func (tree Tree[K, V]) Walk(f func(K, V) bool) {
	if f == nil {
		return
	}
	walk(tree.root, f)
}

// Keys returns all keys of the tree in ascending order.
func (tree Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.size)
	walk(tree.root, func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Entries returns all key/value pairs of the tree in ascending order of keys.
func (tree Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.size)
	walk(tree.root, func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}

// ---------------------------------------------------------------------------

func (tree Tree[K, V]) checkKey(key K) error {
	assertThat(tree.props != nil, "tree has not been initialized; use bst.Immutable(…)")
	if tree.props.isMissing(key) {
		tracer().Infof("rejecting missing key")
		return ErrInvalidArgument
	}
	return nil
}

func (tree Tree[K, V]) withRoot(root *Node[K, V], size int) Tree[K, V] {
	return Tree[K, V]{root: root, size: size, props: tree.props}
}
