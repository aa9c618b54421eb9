package bst

import "golang.org/x/exp/constraints"

// Dictionary is an ordered dictionary holding the current version of a persistent
// tree. Insert and Remove replace the current version by a new one, but only if
// the operation succeeds. Versions retrieved by Snapshot are never affected by
// subsequent operations on the dictionary.
//
// Dictionaries must be created with New or NewFunc; the zero value has no
// ordering for keys and panics on use.
//
// Dictionary is not safe for concurrent modification. Clients have to guard calls
// to Insert and Remove if they share a dictionary between goroutines. Snapshots
// may always be read concurrently.
type Dictionary[K any, V any] struct {
	tree Tree[K, V]
}

// New creates an empty dictionary for an ordered key type.
func New[K constraints.Ordered, V any](opts ...Option[K]) *Dictionary[K, V] {
	return &Dictionary[K, V]{tree: Immutable[K, V](opts...)}
}

// NewFunc creates an empty dictionary with keys ordered by cmp.
func NewFunc[K any, V any](cmp func(K, K) int, opts ...Option[K]) *Dictionary[K, V] {
	return &Dictionary[K, V]{tree: ImmutableFunc[K, V](cmp, opts...)}
}

// Lookup returns the value associated with key, if present.
// If key is missing, ErrInvalidArgument is returned.
func (d *Dictionary[K, V]) Lookup(key K) (V, bool, error) {
	return d.tree.Find(key)
}

// Insert adds key, associated with value. If key is already present, ErrDuplicateKey
// is returned and the dictionary is left unchanged.
func (d *Dictionary[K, V]) Insert(key K, value V) error {
	tree, err := d.tree.With(key, value)
	if err != nil {
		return err
	}
	d.tree = tree
	return nil
}

// Remove deletes key from the dictionary and reports whether it has been present.
// Removing a key which is not present is not an error.
func (d *Dictionary[K, V]) Remove(key K) (bool, error) {
	tree, found, err := d.tree.WithDeleted(key)
	if err != nil || !found {
		return false, err
	}
	d.tree = tree
	return true, nil
}

// Len returns the number of keys in the dictionary.
func (d *Dictionary[K, V]) Len() int {
	return d.tree.Len()
}

// Snapshot returns the current version of the dictionary's tree.
func (d *Dictionary[K, V]) Snapshot() Tree[K, V] {
	return d.tree
}

// Root returns the root node of the current version, or nil if the dictionary is empty.
func (d *Dictionary[K, V]) Root() *Node[K, V] {
	return d.tree.root
}
