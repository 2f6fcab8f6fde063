package parameters

import (
	"fmt"
	"sort"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

// Type tags a parameter with how the store treats its value.
// The zero value is not a valid type.
type Type int

const (
	// PlainText is stored as-is (String in Parameter Store).
	PlainText Type = iota + 1
	// Encrypted is encrypted at rest by the store (SecureString).
	Encrypted
	// List is a comma-separated list of values (StringList).
	List
)

// typeNames is the single mapping between types and their store names.
var typeNames = map[Type]string{
	PlainText: "String",
	Encrypted: "SecureString",
	List:      "StringList",
}

// String returns the Parameter Store name of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType converts a Parameter Store type name into a Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", kerrors.ErrInvalidParameterType, name)
}

// TypeNames returns the accepted type names in a stable order.
func TypeNames() []string {
	return []string{PlainText.String(), Encrypted.String(), List.String()}
}

// Parameter is a single value with its type tag.
type Parameter struct {
	Value string
	Type  Type
}

// Equal reports whether both the type and value match.
func (p Parameter) Equal(other Parameter) bool {
	return p.Type == other.Type && p.Value == other.Value
}

// Collection is an immutable set of parameters sharing a common prefix.
// An empty prefix means the collection has no canonical root.
type Collection struct {
	prefix string
	params map[string]Parameter
}

// NewCollection builds a collection from a copy of params.
func NewCollection(prefix string, params map[string]Parameter) *Collection {
	copied := make(map[string]Parameter, len(params))
	for key, param := range params {
		copied[key] = param
	}
	return &Collection{prefix: prefix, params: copied}
}

// Prefix returns the collection's root path, or "" when it has none.
func (c *Collection) Prefix() string {
	return c.prefix
}

// Len returns the number of parameters.
func (c *Collection) Len() int {
	return len(c.params)
}

// Get returns the parameter stored under key.
func (c *Collection) Get(key string) (Parameter, bool) {
	param, ok := c.params[key]
	return param, ok
}

// Keys returns all keys in lexical order.
func (c *Collection) Keys() []string {
	return sortedKeys(c.params)
}

// Parameters returns a copy of the key to parameter mapping.
func (c *Collection) Parameters() map[string]Parameter {
	copied := make(map[string]Parameter, len(c.params))
	for key, param := range c.params {
		copied[key] = param
	}
	return copied
}

// Equal reports whether both collections have the same prefix and parameters.
func (c *Collection) Equal(other *Collection) bool {
	if c.prefix != other.prefix || len(c.params) != len(other.params) {
		return false
	}
	for key, param := range c.params {
		otherParam, ok := other.params[key]
		if !ok || !param.Equal(otherParam) {
			return false
		}
	}
	return true
}

func sortedKeys(params map[string]Parameter) []string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
