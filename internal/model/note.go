package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NoteKind discriminates the Note union.
type NoteKind int

const (
	// NoteNone marks a note whose shape is not recognized. It renders nothing.
	NoteNone NoteKind = iota
	// NoteText is literal text.
	NoteText
	// NoteImage is an image URL.
	NoteImage
)

func (k NoteKind) String() string {
	switch k {
	case NoteText:
		return "text"
	case NoteImage:
		return "image"
	default:
		return "none"
	}
}

// Note is a question annotation. Bare strings are normalized to NoteText on ingestion.
type Note struct {
	Kind  NoteKind
	Value string
}

type taggedNote struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

func noteFromTag(tag taggedNote) Note {
	switch tag.Type {
	case "image":
		return Note{Kind: NoteImage, Value: tag.Value}
	case "text":
		return Note{Kind: NoteText, Value: tag.Value}
	default:
		return Note{Kind: NoteNone}
	}
}

func noteFromString(s string) Note {
	if s == "" {
		return Note{Kind: NoteNone}
	}
	return Note{Kind: NoteText, Value: s}
}

// UnmarshalJSON accepts a tagged object or a bare string.
func (n *Note) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*n = Note{Kind: NoteNone}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("failed to decode note: %w", err)
		}
		*n = noteFromString(s)
	case '{':
		var tag taggedNote
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			*n = Note{Kind: NoteNone}
			return nil
		}
		*n = noteFromTag(tag)
	default:
		*n = Note{Kind: NoteNone}
	}
	return nil
}

// MarshalJSON writes the tagged form.
func (n Note) MarshalJSON() ([]byte, error) {
	if n.Kind == NoteNone {
		return []byte("null"), nil
	}
	return json.Marshal(taggedNote{Type: n.Kind.String(), Value: n.Value})
}

// UnmarshalYAML accepts a tagged mapping or a bare scalar.
func (n *Note) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*n = Note{Kind: NoteNone}
			return nil
		}
		*n = noteFromString(value.Value)
	case yaml.MappingNode:
		var tag taggedNote
		if err := value.Decode(&tag); err != nil {
			*n = Note{Kind: NoteNone}
			return nil
		}
		*n = noteFromTag(tag)
	default:
		*n = Note{Kind: NoteNone}
	}
	return nil
}
