// Package render turns a scheduled question into a display-independent presentation block.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/hundred/internal/model"
)

// Role distinguishes today's questions from past ones. There is no future role.
type Role string

const (
	RoleCurrent Role = "current"
	RolePast    Role = "past"
)

// Copy affordance appearance.
const (
	CopyLabel     = "📋"
	CopyAckLabel  = "✅"
	CopyAriaLabel = "Copy Question & Test Cases"
	CopyAckDelay  = 1500 * time.Millisecond
)

const (
	testCasesSummary = "Show Sample Test Cases"
	videoLabel       = "Watch Video"
	notesImageAlt    = "Notes image"
)

// Block is the presentation tree for one question.
type Block struct {
	QuestionID int
	Day        int
	Role       Role
	Color      string
	Units      []Unit
}

// Unit is one part of a Block: *Header, *Body, *TestCases, *VideoLink or *Notes.
type Unit interface {
	unit()
}

// Header carries the section icon, the title and the copy affordance.
type Header struct {
	// Icon is raw markup supplied by the data source.
	Icon  string
	Title string
	Copy  CopyButton
}

// CopyButton exports the question transcript.
type CopyButton struct {
	Label      string
	AckLabel   string
	AriaLabel  string
	Transcript string
}

// Body is the question text, whitespace preserved.
type Body struct {
	Text string
}

// TestCases is the collapsible list of samples.
type TestCases struct {
	Summary string
	Cases   []Case
}

// Case is one numbered sample.
type Case struct {
	Index  int
	Fields []Field
}

// Field is a labelled preformatted value.
type Field struct {
	Label string
	Value string
}

// VideoLink opens the solution video in a new browsing context.
type VideoLink struct {
	Href       string
	Label      string
	NewContext bool
}

// Notes shows an image reference or literal text.
type Notes struct {
	Kind  model.NoteKind
	Value string
	Alt   string
}

func (*Header) unit()    {}
func (*Body) unit()      {}
func (*TestCases) unit() {}
func (*VideoLink) unit() {}
func (*Notes) unit()     {}

// Question renders q as shown on day, given the current day.
func Question(q model.FlattenedQuestion, day, currentDay int) Block {
	role := RolePast
	if day == currentDay {
		role = RoleCurrent
	}
	b := Block{
		QuestionID: q.ID,
		Day:        day,
		Role:       role,
		Color:      q.Color,
	}
	b.Units = append(b.Units,
		&Header{
			Icon:  q.Icon,
			Title: Title(q),
			Copy: CopyButton{
				Label:      CopyLabel,
				AckLabel:   CopyAckLabel,
				AriaLabel:  CopyAriaLabel,
				Transcript: Transcript(q),
			},
		},
		&Body{Text: q.Text},
	)
	if tc := testCases(q.TestCases); tc != nil {
		b.Units = append(b.Units, tc)
	}
	if q.Video != "" {
		b.Units = append(b.Units, &VideoLink{Href: q.Video, Label: videoLabel, NewContext: true})
	}
	if n := notes(q.Notes); n != nil {
		b.Units = append(b.Units, n)
	}
	return b
}

// Title formats the question label.
func Title(q model.FlattenedQuestion) string {
	return fmt.Sprintf("Q%d (%s)", q.ID, q.Section)
}

// Header returns the block header.
func (b Block) Header() *Header {
	for _, u := range b.Units {
		if h, ok := u.(*Header); ok {
			return h
		}
	}
	return nil
}

func testCases(cases []model.TestCase) *TestCases {
	if len(cases) == 0 {
		return nil
	}
	out := &TestCases{Summary: testCasesSummary, Cases: make([]Case, 0, len(cases))}
	for i, tc := range cases {
		n := i + 1
		c := Case{
			Index: n,
			Fields: []Field{
				{Label: fmt.Sprintf("Input %d:", n), Value: tc.Input},
				{Label: fmt.Sprintf("Output %d:", n), Value: tc.Output},
			},
		}
		if strings.TrimSpace(tc.Explanation) != "" {
			c.Fields = append(c.Fields, Field{Label: fmt.Sprintf("Explanation %d:", n), Value: tc.Explanation})
		}
		out.Cases = append(out.Cases, c)
	}
	return out
}

func notes(n *model.Note) *Notes {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case model.NoteImage:
		return &Notes{Kind: model.NoteImage, Value: n.Value, Alt: notesImageAlt}
	case model.NoteText:
		return &Notes{Kind: model.NoteText, Value: n.Value}
	default:
		return nil
	}
}
