package mdlines

// Kind identifies the variant of a Block.
type Kind int

// Block kinds, in classification order.
const (
	KindParagraph Kind = iota
	KindHeader
	KindUnorderedItem
	KindOrderedItem
	KindImage
	KindLink
	KindHorizontalRule
)

var kindNames = [...]string{
	KindParagraph:      "paragraph",
	KindHeader:         "header",
	KindUnorderedItem:  "unordered-item",
	KindOrderedItem:    "ordered-item",
	KindImage:          "image",
	KindLink:           "link",
	KindHorizontalRule: "horizontal-rule",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every block kind.
func Kinds() []Kind {
	return []Kind{
		KindHeader,
		KindUnorderedItem,
		KindOrderedItem,
		KindImage,
		KindLink,
		KindHorizontalRule,
		KindParagraph,
	}
}

// Block is the classified meaning of a single line.
// The concrete types are Header, UnorderedItem, OrderedItem, Link, Image,
// HorizontalRule and Paragraph. All of them are comparable values.
type Block interface {
	Kind() Kind
	block()
}

// Compile-time interface checks.
var (
	_ Block = Header{}
	_ Block = UnorderedItem{}
	_ Block = OrderedItem{}
	_ Block = Link{}
	_ Block = Image{}
	_ Block = HorizontalRule{}
	_ Block = Paragraph{}
)

// Header is an ATX heading. Level is the number of leading '#' (1-6).
type Header struct {
	Text  string
	Level int
}

// UnorderedItem is a "* " list item.
type UnorderedItem struct {
	Text string
}

// OrderedItem is a "N. " list item. The ordinal is not kept.
type OrderedItem struct {
	Text string
}

// Link is a line starting with [label](url).
type Link struct {
	Label string
	URL   string
}

// Image is a line starting with ![alt](url).
type Image struct {
	Alt string
	URL string
}

// HorizontalRule is a line made only of three or more dashes.
type HorizontalRule struct{}

// Paragraph holds any line no other rule matched, verbatim.
type Paragraph struct {
	Text string
}

func (Header) Kind() Kind         { return KindHeader }
func (UnorderedItem) Kind() Kind  { return KindUnorderedItem }
func (OrderedItem) Kind() Kind    { return KindOrderedItem }
func (Link) Kind() Kind           { return KindLink }
func (Image) Kind() Kind          { return KindImage }
func (HorizontalRule) Kind() Kind { return KindHorizontalRule }
func (Paragraph) Kind() Kind      { return KindParagraph }

func (Header) block()         {}
func (UnorderedItem) block()  {}
func (OrderedItem) block()    {}
func (Link) block()           {}
func (Image) block()          {}
func (HorizontalRule) block() {}
func (Paragraph) block()      {}
