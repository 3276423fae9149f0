// Package model defines shared data structures.
package model

// Document is the data source shape: one bank, optionally followed by a final bank.
type Document struct {
	QuestionBank      []Section `json:"questionBank" yaml:"questionBank"`
	FinalQuestionBank []Section `json:"finalQuestionBank" yaml:"finalQuestionBank"`
}

// HasFinalBank reports whether the document carries an explicit second phase.
// An empty but present final bank still counts; a nil bank encodes as null.
func (d Document) HasFinalBank() bool {
	return d.FinalQuestionBank != nil
}

// Section groups questions under shared display metadata.
type Section struct {
	Name      string     `json:"section" yaml:"section"`
	Icon      string     `json:"icon" yaml:"icon"`
	Color     string     `json:"color" yaml:"color"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is one practice problem.
type Question struct {
	ID        int        `json:"id" yaml:"id"`
	Text      string     `json:"text" yaml:"text"`
	TestCases []TestCase `json:"testCases,omitempty" yaml:"testCases,omitempty"`
	Video     string     `json:"video,omitempty" yaml:"video,omitempty"`
	Notes     *Note      `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// TestCase is a sample input/output pair.
type TestCase struct {
	Input       string `json:"input" yaml:"input"`
	Output      string `json:"output" yaml:"output"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// FlattenedQuestion is a Question denormalized with its section's display metadata.
type FlattenedQuestion struct {
	Question
	Section string `json:"section"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}
