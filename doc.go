// Package psvi implements the post-schema-validation infoset value model:
// the per-element and per-attribute records a validator produces when it
// validates a document node, and the merge operation that transfers a
// freshly computed outcome onto the record owned by a persistent tree node.
//
// The package never initiates validation. A validation engine fills in an
// ElementResult or AttrResult per node and merges it onto the node's owned
// record; arbitrary consumers then query validity, type, and value through
// the ItemPSVI accessor surface without re-running validation.
package psvi
