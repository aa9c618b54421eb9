/*
Package persistent is the umbrella for immutable persistent data structures.
Persistent data structures can be "modified" efficiently, leaving the original unchanged:
every update returns a new version, while all earlier versions remain valid.

Persistent structures offer structural sharing: two versions which are mostly copies of
each other share most of the memory they take up. Making a modified copy therefore is
cheap in terms of space- and time-complexity, and old versions are inherently safe for
concurrent readers.

Sub-package bst implements an ordered dictionary on top of a path-copying binary search tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
