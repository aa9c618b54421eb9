/*
Package bst implements a persistent (immutable) ordered dictionary, using an
unbalanced binary search tree with path copying.

Every insertion or deletion creates a new incarnation of the tree. Only the nodes on the
search path from the root down to the affected position are re-created; all other
sub-trees are shared between the old and the new version. Old versions remain valid
and may be read concurrently without locking.

	tree := bst.Immutable[string, int]()
	tree, err := tree.With("Galaxy", 42)
	value, found, err := tree.Find("Galaxy")    // returns 42, true, nil

Clients wanting a conventional, mutable-looking container use Dictionary, which swaps its
root to the new version after every successful operation:

	dict := bst.New[string, int]()
	err := dict.Insert("Galaxy", 42)
	removed, err := dict.Remove("Galaxy")       // returns true, nil

Insertion of a key which is already present is an error (ErrDuplicateKey); keys are never
silently overwritten. Keys considered "missing" (e.g., nil pointers) are rejected with
ErrInvalidArgument by every operation.

The tree is not balanced. Worst case depth is O(n), e.g. for keys inserted in
ascending order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}

// ErrInvalidArgument is returned if an operation is called with a missing key.
var ErrInvalidArgument = errors.New("invalid argument: missing key")

// ErrDuplicateKey is returned if a key to insert is already present in a tree.
var ErrDuplicateKey = errors.New("duplicate key")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(errors.AssertionFailedf("bst: "+msg, msgargs...))
	}
}
