package errors

import (
	"fmt"
)

// ItemNotFound creates a catalog item lookup miss error
func ItemNotFound(name string) *CatalogError {
	return New(ErrCodeNotFound, fmt.Sprintf("catalog item '%s' not found", name)).
		WithDetail("name", name)
}

// NotLoadable creates an error for an item with no loadable descendant
func NotLoadable(name string) *CatalogError {
	return New(ErrCodeNotLoadable, fmt.Sprintf("no loadable item found for '%s'", name)).
		WithDetail("name", name)
}

// UnknownCategory creates an unknown category token error
func UnknownCategory(token string) *CatalogError {
	return New(ErrCodeUnknownCategory, fmt.Sprintf("unknown category '%s'", token)).
		WithDetail("category", token)
}

// MissingArgument creates an error for a required command argument that is absent
func MissingArgument(command, argument string) *CatalogError {
	return New(ErrCodeInvalidArgument,
		fmt.Sprintf("%s requires argument '%s'", command, argument)).
		WithDetail("command", command).
		WithDetail("argument", argument)
}

// IndexOutOfRange creates an error for an out-of-bounds track or device index
func IndexOutOfRange(kind string, index, length int) *CatalogError {
	return New(ErrCodeIndexOutOfRange,
		fmt.Sprintf("%s index %d out of range (0..%d)", kind, index, length-1)).
		WithDetail("kind", kind).
		WithDetail("index", index).
		WithDetail("length", length)
}

// HostOperation wraps a failure raised by one of the host's own calls
func HostOperation(op string, err error) *CatalogError {
	return Wrap(err, ErrCodeHostOperation, fmt.Sprintf("host operation '%s' failed", op)).
		WithDetail("operation", op)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *CatalogError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *CatalogError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
