package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// document is the portable text form of a collection.
type document struct {
	Prefix     string           `yaml:"prefix,omitempty"`
	Parameters map[string]entry `yaml:"parameters"`
}

// entry uses pointers so a missing field can be told apart from an empty one.
type entry struct {
	Value *scalar `yaml:"value"`
	Type  *string `yaml:"type"`
}

// scalar is a parameter value. Values that a block or plain scalar would
// not reproduce exactly are written double-quoted with escapes.
type scalar string

func (s scalar) MarshalYAML() (any, error) {
	if !needsQuoting(string(s)) {
		return string(s), nil
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: string(s),
	}, nil
}

// needsQuoting reports whether value has leading or trailing whitespace, a
// control character, or a line separator other than \n. A single trailing
// newline after visible text is left to the literal block style. Invalid
// UTF-8 is left to the encoder, which writes it as !!binary.
func needsQuoting(value string) bool {
	if value == "" || !utf8.ValidString(value) {
		return false
	}
	for _, r := range value {
		if r != '\n' && (unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff') {
			return true
		}
	}

	first, _ := utf8.DecodeRuneInString(value)
	if unicode.IsSpace(first) {
		return true
	}

	body := strings.TrimSuffix(value, "\n")
	if body == "" {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(body)
	return unicode.IsSpace(last)
}

// Serialize renders a collection as YAML. Output is deterministic: keys are
// emitted in sorted order.
func Serialize(c *parameters.Collection) (string, error) {
	doc := document{
		Prefix:     c.Prefix(),
		Parameters: make(map[string]entry, c.Len()),
	}
	for key, param := range c.Parameters() {
		value := scalar(param.Value)
		typeName := param.Type.String()
		doc.Parameters[key] = entry{Value: &value, Type: &typeName}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("%w: encoding yaml: %v", kerrors.ErrFormat, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: encoding yaml: %v", kerrors.ErrFormat, err)
	}

	return buf.String(), nil
}

// Deserialize parses the YAML produced by Serialize, or written by hand.
//
// Unknown fields, missing fields, and extra documents are rejected with
// ErrFormat; unrecognized type names with ErrInvalidParameterType.
func Deserialize(text string) (*parameters.Collection, error) {
	var doc document
	if err := decodeStrict(text, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrFormat, err)
	}

	if doc.Parameters == nil {
		return nil, fmt.Errorf("%w: missing required field \"parameters\"", kerrors.ErrFormat)
	}

	if doc.Prefix != "" {
		if err := parameters.ValidatePrefix(doc.Prefix); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(doc.Parameters))
	for key := range doc.Parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	params := make(map[string]parameters.Parameter, len(doc.Parameters))
	for _, key := range keys {
		e := doc.Parameters[key]
		if e.Value == nil {
			return nil, fmt.Errorf("%w: parameter %s: missing required field \"value\"", kerrors.ErrFormat, key)
		}
		if e.Type == nil {
			return nil, fmt.Errorf("%w: parameter %s: missing required field \"type\"", kerrors.ErrFormat, key)
		}
		paramType, err := parameters.ParseType(*e.Type)
		if err != nil {
			return nil, &kerrors.KeyError{Key: key, Err: err}
		}
		params[key] = parameters.Parameter{Value: string(*e.Value), Type: paramType}
	}

	return parameters.NewCollection(doc.Prefix, params), nil
}

func decodeStrict(content string, out any) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("document is empty")
	}

	dec := yaml.NewDecoder(strings.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return err
	}

	// Reject multi-document YAML so an edit can't smuggle in a second set.
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return errors.New("multiple YAML documents are not allowed")
	} else if !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
