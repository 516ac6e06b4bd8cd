package errors

import "errors"

// NotSerializable is returned on any attempt to serialize a node carrying
// post-validation data. Schema-model references (element declarations, type
// definitions) are not serializable, so the whole node refuses persistence
// rather than silently producing output with the data stripped.
//
//nolint:errname // public API name, matches the guarded condition.
type NotSerializable struct {
	// Node names the node that refused serialization.
	Node string
}

// Error describes the refused node.
func (e *NotSerializable) Error() string {
	if e == nil || e.Node == "" {
		return "psvi: node is not serializable"
	}
	return "psvi: node " + e.Node + " is not serializable"
}

// IsNotSerializable reports whether err is a NotSerializable error.
func IsNotSerializable(err error) bool {
	var target *NotSerializable
	return errors.As(err, &target)
}
