// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Load reads the parameter file at path into out, a pointer to a struct.
func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Decode parses YAML into out. Missing keys are reported before anything
// is decoded; then yaml decoding, validate tags and an optional
// Validate() error method run in that order.
func Decode(data []byte, out any) error {
	keys, err := Keys(out)
	if err != nil {
		return err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return invalidf("parse: %v", err)
	}
	var doc *yaml.Node
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		doc = root.Content[0]
	}
	if doc != nil && doc.Kind != yaml.MappingNode && !isEmpty(doc) {
		return invalidf("top level must be a mapping, got %s", kindName(doc.Kind))
	}

	present := map[string]bool{}
	if doc != nil && doc.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(doc.Content); i += 2 {
			present[doc.Content[i].Value] = !isEmpty(doc.Content[i+1])
		}
	}
	var missing []string
	for _, k := range keys {
		if !present[k] {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}

	if doc != nil {
		if err := doc.Decode(out); err != nil {
			return invalidf("%v", err)
		}
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s fails %q", fe.Namespace(), tagString(fe))
			}
			return invalidf("%s", strings.Join(msgs, "; "))
		}
		return invalidf("%v", err)
	}
	if v, ok := out.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
	}

	return nil
}

func tagString(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}

func isEmpty(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Tag == "!!null" || n.Value == ""
	case yaml.SequenceNode, yaml.MappingNode:
		return len(n.Content) == 0
	case yaml.AliasNode:
		return n.Alias == nil || isEmpty(n.Alias)
	default:
		return true
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

// Keys lists the required yaml keys of the struct v points to, in field
// order. Inline embedded structs contribute their own keys.
func Keys(v any) ([]string, error) {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, invalidf("parameters must be a pointer to a struct, got %T", v)
	}

	return structKeys(t.Elem()), nil
}

func structKeys(t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if strings.Contains(opts, "inline") && f.Type.Kind() == reflect.Struct {
			keys = append(keys, structKeys(f.Type)...)
			continue
		}
		if strings.Contains(opts, "omitempty") {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		keys = append(keys, name)
	}

	return keys
}
