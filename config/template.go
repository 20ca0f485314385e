// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TemplateName is the file a driver writes when run without a parameter file.
const TemplateName = "template.yaml"

// Template renders a parameter file with every key set to "".
func Template(keys []string) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "", Style: yaml.DoubleQuotedStyle},
		)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("config: render template: %w", err)
	}

	return out, nil
}

// WriteTemplate writes Template(keys) to path.
func WriteTemplate(path string, keys []string) error {
	data, err := Template(keys)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write template: %w", err)
	}

	return nil
}

// Configs expands start, end (exclusive) and inc into configuration numbers.
func Configs(start, end, inc int) ([]int, error) {
	if inc <= 0 {
		return nil, invalidf("conf_inc must be positive, got %d", inc)
	}
	if end <= start {
		return nil, invalidf("conf_end %d must exceed conf_start %d", end, start)
	}
	out := make([]int, 0, (end-start+inc-1)/inc)
	for c := start; c < end; c += inc {
		out = append(out, c)
	}

	return out, nil
}
