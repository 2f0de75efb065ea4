package mdlines

// Sink receives rendering commands for classified lines.
// Methods are commands: Render ignores whatever a sink does with them.
// A Sink need not be safe for concurrent use; give each goroutine its own.
type Sink interface {
	Header(text string, level int)
	UnorderedItem(text string)
	OrderedItem(text string)
	Link(label, url string)
	Image(alt, url string)
	HorizontalRule()
	Paragraph(text string)

	// Separator is called once after every line.
	Separator()
}

// Tee returns a Sink that forwards every call to each of sinks in order.
func Tee(sinks ...Sink) Sink {
	return teeSink(append([]Sink(nil), sinks...))
}

type teeSink []Sink

func (t teeSink) Header(text string, level int) {
	for _, s := range t {
		s.Header(text, level)
	}
}

func (t teeSink) UnorderedItem(text string) {
	for _, s := range t {
		s.UnorderedItem(text)
	}
}

func (t teeSink) OrderedItem(text string) {
	for _, s := range t {
		s.OrderedItem(text)
	}
}

func (t teeSink) Link(label, url string) {
	for _, s := range t {
		s.Link(label, url)
	}
}

func (t teeSink) Image(alt, url string) {
	for _, s := range t {
		s.Image(alt, url)
	}
}

func (t teeSink) HorizontalRule() {
	for _, s := range t {
		s.HorizontalRule()
	}
}

func (t teeSink) Paragraph(text string) {
	for _, s := range t {
		s.Paragraph(text)
	}
}

func (t teeSink) Separator() {
	for _, s := range t {
		s.Separator()
	}
}
