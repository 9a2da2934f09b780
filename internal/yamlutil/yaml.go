// Package yamlutil is the single entry point to goccy/go-yaml.
//
// Config files decode into structs with UnmarshalStrict. Data files decode
// into generic values with DecodeLiteral, which keeps numbers as written so
// a YAML record renders the same as its JSON twin.
package yamlutil

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// MaxInputSize caps the bytes accepted by any decode call (8MB).
// Data files carry full page copy, so the cap is well above config size.
var MaxInputSize = 8 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrUnknownAlias   = errors.New("yamlutil: unknown alias")
	ErrDuplicateKey   = errors.New("yamlutil: duplicate mapping key")
)

func checkSize(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// UnmarshalStrict decodes a config document into v. Keys with no matching
// struct field are an error.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeLiteral decodes the first document of data into map[string]any,
// []any, string, bool and nil values. Numeric scalars (integers, floats,
// .inf, .nan) become json.Number holding their source text, so 1.50 stays
// "1.50". A document with no content decodes to nil.
func DecodeLiteral(data []byte) (any, error) {
	if err := checkSize(data); err != nil {
		return nil, err
	}
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	if len(file.Docs) == 0 {
		return nil, nil
	}
	d := &literalDecoder{anchors: map[string]any{}}
	return d.value(file.Docs[0].Body)
}

type literalDecoder struct {
	anchors map[string]any
}

func (d *literalDecoder) value(node ast.Node) (any, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case *ast.DocumentNode:
		return d.value(n.Body)
	case *ast.CommentGroupNode, *ast.CommentNode, *ast.NullNode:
		return nil, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return "", nil
		}
		return n.Value.Value, nil
	case *ast.BoolNode:
		return n.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.InfinityNode, *ast.NanNode:
		return json.Number(n.GetToken().Value), nil
	case *ast.TagNode:
		return d.tagged(n)
	case *ast.AnchorNode:
		v, err := d.value(n.Value)
		if err != nil {
			return nil, err
		}
		d.anchors[n.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := d.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: *%s", ErrUnknownAlias, name)
		}
		return v, nil
	case *ast.SequenceNode:
		out := make([]any, 0, len(n.Values))
		for _, item := range n.Values {
			v, err := d.value(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case *ast.MappingNode:
		return d.mapping(n.Values)
	case *ast.MappingValueNode:
		return d.mapping([]*ast.MappingValueNode{n})
	case *ast.MappingKeyNode:
		return d.value(n.Value)
	default:
		var v any
		if err := yaml.NodeToValue(node, &v); err != nil {
			return nil, fmt.Errorf("yamlutil: %w", err)
		}
		return v, nil
	}
}

// tagged honors !!str on a scalar by keeping its source text; every other
// tag decodes its value as if untagged.
func (d *literalDecoder) tagged(n *ast.TagNode) (any, error) {
	if n.Start != nil && n.Start.Value == "!!str" && n.Value != nil {
		if s, ok := n.Value.(*ast.StringNode); ok {
			return s.Value, nil
		}
		if tok := n.Value.GetToken(); tok != nil {
			return tok.Value, nil
		}
	}
	return d.value(n.Value)
}

// mapping builds a map from entries. Merge keys (<<) fill in only the keys
// the mapping does not set itself.
func (d *literalDecoder) mapping(entries []*ast.MappingValueNode) (map[string]any, error) {
	out := make(map[string]any, len(entries))
	explicit := make(map[string]bool, len(entries))
	var merged []map[string]any

	for _, e := range entries {
		if e.Key != nil && e.Key.IsMergeKey() {
			v, err := d.value(e.Value)
			if err != nil {
				return nil, err
			}
			switch m := v.(type) {
			case map[string]any:
				merged = append(merged, m)
			case []any:
				for _, item := range m {
					if im, ok := item.(map[string]any); ok {
						merged = append(merged, im)
					}
				}
			}
			continue
		}

		k, err := d.value(e.Key)
		if err != nil {
			return nil, err
		}
		key, ok := k.(string)
		if !ok {
			key = fmt.Sprint(k)
		}
		if explicit[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		v, err := d.value(e.Value)
		if err != nil {
			return nil, err
		}
		out[key] = v
		explicit[key] = true
	}

	for _, m := range merged {
		for k, v := range m {
			if _, set := out[k]; !set {
				out[k] = v
			}
		}
	}
	return out, nil
}
