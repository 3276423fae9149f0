package tui

import "github.com/verte-zerg/hundred/internal/page"

// Canvas is the terminal mount point for day blocks.
type Canvas struct {
	blocks  []page.DayBlock
	failure string
}

// Clear implements page.Mount.
func (c *Canvas) Clear() {
	c.blocks = nil
	c.failure = ""
}

// Append implements page.Mount.
func (c *Canvas) Append(block page.DayBlock) {
	c.blocks = append(c.blocks, block)
}

// Fail implements page.Mount.
func (c *Canvas) Fail(message string) {
	c.blocks = nil
	c.failure = message
}

// Blocks returns the mounted day blocks.
func (c *Canvas) Blocks() []page.DayBlock {
	return c.blocks
}

// Failure returns the failure message, if any.
func (c *Canvas) Failure() string {
	return c.failure
}

// QuestionCount returns the number of mounted questions across all days.
func (c *Canvas) QuestionCount() int {
	n := 0
	for _, b := range c.blocks {
		n += len(b.Questions)
	}
	return n
}
