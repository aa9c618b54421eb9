package bst

import "fmt"

// Node is the building block of trees. A node carries a key/value pair and links
// to a left and a right child, either of which may be nil.
//
// Nodes are never modified after creation. A node may be part of any number of
// tree versions at the same time, therefore clients get read-only access only.
type Node[K any, V any] struct {
	key   K
	value V
	left  *Node[K, V]
	right *Node[K, V]
}

func newNode[K any, V any](key K, value V, left, right *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{key: key, value: value, left: left, right: right}
}

// withLeft creates a copy of node with its left child replaced. The right child is shared.
func (node *Node[K, V]) withLeft(left *Node[K, V]) *Node[K, V] {
	return newNode(node.key, node.value, left, node.right)
}

// withRight creates a copy of node with its right child replaced. The left child is shared.
func (node *Node[K, V]) withRight(right *Node[K, V]) *Node[K, V] {
	return newNode(node.key, node.value, node.left, right)
}

// Key returns the key of a node, or the zero value for K if node is nil.
func (node *Node[K, V]) Key() K {
	if node == nil {
		var none K
		return none
	}
	return node.key
}

// Value returns the value associated with the node's key.
func (node *Node[K, V]) Value() V {
	if node == nil {
		var none V
		return none
	}
	return node.value
}

// Left returns the left child, or nil.
func (node *Node[K, V]) Left() *Node[K, V] {
	if node == nil {
		return nil
	}
	return node.left
}

// Right returns the right child, or nil.
func (node *Node[K, V]) Right() *Node[K, V] {
	if node == nil {
		return nil
	}
	return node.right
}

// IsLeaf is true for nodes without children.
func (node *Node[K, V]) IsLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *Node[K, V]) String() string {
	if node == nil {
		return "⟨⟩"
	}
	return fmt.Sprintf("⟨%v:%v⟩", node.key, node.value)
}

// Entry is a key/value pair.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (node *Node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: node.key, Value: node.value}
}
