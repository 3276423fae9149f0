package render

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/verte-zerg/hundred/internal/model"
)

// Transcript is the plain-text export of a question. Explanations are left out.
func Transcript(q model.FlattenedQuestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Q%d: %s\n\n/*\nSample Test Cases:\n", q.ID, q.Text)
	for i, tc := range q.TestCases {
		fmt.Fprintf(&b, "Input %d:\n%s\nOutput %d:\n%s\n\n", i+1, tc.Input, i+1, tc.Output)
	}
	b.WriteString("*/")
	return b.String()
}

// Clipboard accepts text for export.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy writes the transcript of the button to clip. Failures are swallowed and
// reported as false so the caller skips the acknowledgement.
func Copy(clip Clipboard, button CopyButton) bool {
	if clip == nil {
		return false
	}
	if err := clip.WriteAll(button.Transcript); err != nil {
		return false
	}
	return true
}
