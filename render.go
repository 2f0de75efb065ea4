package mdlines

import (
	"context"
	"strings"
)

// Render classifies each line of document and sends it to sink, followed by
// a Separator call. Lines are split on '\n' only; blank lines and a trailing
// newline each produce an empty Paragraph. Panics raised by sink are not
// recovered.
func Render(document string, sink Sink) {
	for _, line := range strings.Split(document, "\n") {
		Dispatch(Classify(line), sink)
		sink.Separator()
	}
}

// RenderContext is Render with a cancellation check before every line.
// It returns ctx.Err() as is when cancelled; lines already sent stay sent.
func RenderContext(ctx context.Context, document string, sink Sink) error {
	for _, line := range strings.Split(document, "\n") {
		if err := ctx.Err(); err != nil {
			return err
		}
		Dispatch(Classify(line), sink)
		sink.Separator()
	}
	return nil
}

// Dispatch invokes the sink operation matching b. It does not call Separator.
func Dispatch(b Block, sink Sink) {
	switch b := b.(type) {
	case Header:
		sink.Header(b.Text, b.Level)
	case UnorderedItem:
		sink.UnorderedItem(b.Text)
	case OrderedItem:
		sink.OrderedItem(b.Text)
	case Link:
		sink.Link(b.Label, b.URL)
	case Image:
		sink.Image(b.Alt, b.URL)
	case HorizontalRule:
		sink.HorizontalRule()
	case Paragraph:
		sink.Paragraph(b.Text)
	}
}
