package schema

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON writes the rows as an array of objects whose keys follow
// Columns rather than Go's sorted map order.
func (r ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range r.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range r.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			value, err := json.Marshal(row[col])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalYAML emits a sequence of mappings, keys in column order.
func (r ResultSet) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range r.Rows {
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, col := range r.Columns {
			var value yaml.Node
			if err := value.Encode(row[col]); err != nil {
				return nil, err
			}
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col},
				&value)
		}
		seq.Content = append(seq.Content, mapping)
	}
	return seq, nil
}
