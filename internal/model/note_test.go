package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNoteUnmarshalJSONVariants(t *testing.T) {
	cases := []struct {
		raw   string
		kind  NoteKind
		value string
	}{
		{`{"type":"image","value":"https://x/y.png"}`, NoteImage, "https://x/y.png"},
		{`{"type":"text","value":"remember the edge case"}`, NoteText, "remember the edge case"},
		{`"legacy shorthand"`, NoteText, "legacy shorthand"},
		{`""`, NoteNone, ""},
		{`{"type":"audio","value":"x"}`, NoteNone, ""},
		{`42`, NoteNone, ""},
		{`["a"]`, NoteNone, ""},
	}
	for _, tc := range cases {
		var n Note
		if err := json.Unmarshal([]byte(tc.raw), &n); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if n.Kind != tc.kind || n.Value != tc.value {
			t.Fatalf("unmarshal %s: got %v %q, want %v %q", tc.raw, n.Kind, n.Value, tc.kind, tc.value)
		}
	}
}

func TestQuestionWithoutNotesKeepsNil(t *testing.T) {
	var q Question
	if err := json.Unmarshal([]byte(`{"id":1,"text":"t","notes":null}`), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if q.Notes != nil {
		t.Fatalf("expected nil notes, got %+v", q.Notes)
	}
}

func TestNoteUnmarshalYAML(t *testing.T) {
	src := `
- id: 1
  text: a
  notes: plain words
- id: 2
  text: b
  notes:
    type: image
    value: https://img/x.png
- id: 3
  text: c
`
	var qs []Question
	if err := yaml.Unmarshal([]byte(src), &qs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
	if qs[0].Notes == nil || qs[0].Notes.Kind != NoteText || qs[0].Notes.Value != "plain words" {
		t.Fatalf("unexpected first note: %+v", qs[0].Notes)
	}
	if qs[1].Notes == nil || qs[1].Notes.Kind != NoteImage {
		t.Fatalf("unexpected second note: %+v", qs[1].Notes)
	}
	if qs[2].Notes != nil {
		t.Fatalf("expected no note on third question")
	}
}

func TestHasFinalBank(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"questionBank":[],"finalQuestionBank":[]}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !doc.HasFinalBank() {
		t.Fatalf("expected empty final bank to count as present")
	}
	doc = Document{}
	if err := json.Unmarshal([]byte(`{"questionBank":[]}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.HasFinalBank() {
		t.Fatalf("expected absent final bank")
	}
}
