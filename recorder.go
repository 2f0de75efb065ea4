package mdlines

import (
	"fmt"
	"strings"
)

// Op names a Sink method.
type Op string

// Sink operations as recorded by Recorder.
const (
	OpHeader         Op = "Header"
	OpUnorderedItem  Op = "UnorderedItem"
	OpOrderedItem    Op = "OrderedItem"
	OpLink           Op = "Link"
	OpImage          Op = "Image"
	OpHorizontalRule Op = "HorizontalRule"
	OpParagraph      Op = "Paragraph"
	OpSeparator      Op = "Separator"
)

// Call is one recorded Sink invocation.
// Text carries the header, item or paragraph text, the link label or the
// image alt text. Level is only set for headers, URL for links and images.
type Call struct {
	Op    Op
	Text  string
	Level int
	URL   string
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Op))
	if c.Level != 0 {
		fmt.Fprintf(&sb, " Level=%d", c.Level)
	}
	if c.Text != "" {
		fmt.Fprintf(&sb, " Text=%q", c.Text)
	}
	if c.URL != "" {
		fmt.Fprintf(&sb, " URL=%q", c.URL)
	}
	return sb.String()
}

// Recorder is a Sink that records every call it receives.
type Recorder struct {
	Calls []Call
}

// Compile-time interface check.
var _ Sink = (*Recorder)(nil)

// Header records the call.
func (r *Recorder) Header(text string, level int) {
	r.Calls = append(r.Calls, Call{Op: OpHeader, Text: text, Level: level})
}

// UnorderedItem records the call.
func (r *Recorder) UnorderedItem(text string) {
	r.Calls = append(r.Calls, Call{Op: OpUnorderedItem, Text: text})
}

// OrderedItem records the call.
func (r *Recorder) OrderedItem(text string) {
	r.Calls = append(r.Calls, Call{Op: OpOrderedItem, Text: text})
}

// Link records the call.
func (r *Recorder) Link(label, url string) {
	r.Calls = append(r.Calls, Call{Op: OpLink, Text: label, URL: url})
}

// Image records the call.
func (r *Recorder) Image(alt, url string) {
	r.Calls = append(r.Calls, Call{Op: OpImage, Text: alt, URL: url})
}

// HorizontalRule records the call.
func (r *Recorder) HorizontalRule() {
	r.Calls = append(r.Calls, Call{Op: OpHorizontalRule})
}

// Paragraph records the call.
func (r *Recorder) Paragraph(text string) {
	r.Calls = append(r.Calls, Call{Op: OpParagraph, Text: text})
}

// Separator records the call.
func (r *Recorder) Separator() {
	r.Calls = append(r.Calls, Call{Op: OpSeparator})
}

// String renders the recorded calls one per line.
func (r *Recorder) String() string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Counter is a Sink that counts blocks by kind.
type Counter struct {
	counts [len(kindNames)]int
	lines  int
}

// Compile-time interface check.
var _ Sink = (*Counter)(nil)

// Sink methods: each block increments its kind, each Separator a line.

func (c *Counter) Header(string, int)   { c.counts[KindHeader]++ }
func (c *Counter) UnorderedItem(string) { c.counts[KindUnorderedItem]++ }
func (c *Counter) OrderedItem(string)   { c.counts[KindOrderedItem]++ }
func (c *Counter) Link(string, string)  { c.counts[KindLink]++ }
func (c *Counter) Image(string, string) { c.counts[KindImage]++ }
func (c *Counter) HorizontalRule()      { c.counts[KindHorizontalRule]++ }
func (c *Counter) Paragraph(string)     { c.counts[KindParagraph]++ }
func (c *Counter) Separator()           { c.lines++ }

// Count returns how many blocks of kind k were seen.
func (c *Counter) Count(k Kind) int {
	if k < 0 || int(k) >= len(c.counts) {
		return 0
	}
	return c.counts[k]
}

// Lines returns the number of lines processed.
func (c *Counter) Lines() int {
	return c.lines
}

// Stats returns a snapshot of the counts.
func (c *Counter) Stats() Stats {
	blocks := make(map[Kind]int, len(c.counts))
	for k, n := range c.counts {
		if n > 0 {
			blocks[Kind(k)] = n
		}
	}
	return Stats{Lines: c.lines, Blocks: blocks}
}
