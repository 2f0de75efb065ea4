package mdlines

import "regexp"

// Precompiled line patterns. Each one is anchored at line start.
var (
	headerPattern        = regexp.MustCompile(`^(#{1,6})\s(.+)`)
	unorderedItemPattern = regexp.MustCompile(`^\*\s(.+)`)
	orderedItemPattern   = regexp.MustCompile(`^\d+\.\s(.+)`)
	imagePattern         = regexp.MustCompile(`^!\[([^\]]+)\]\(([^)]+)\)`)
	linkPattern          = regexp.MustCompile(`^\[([^\]]+)\]\(([^)]+)\)`)
	horizontalRuleRegexp = regexp.MustCompile(`^\s*-{3,}\s*$`)
)

// rule pairs a pattern with the constructor for its submatches.
type rule struct {
	kind    Kind
	pattern *regexp.Regexp
	build   func(m []string) Block
}

// rules is the precedence table. The first matching rule wins.
// Image must stay ahead of Link.
var rules = []rule{
	{KindHeader, headerPattern, func(m []string) Block {
		return Header{Text: m[2], Level: len(m[1])}
	}},
	{KindUnorderedItem, unorderedItemPattern, func(m []string) Block {
		return UnorderedItem{Text: m[1]}
	}},
	{KindOrderedItem, orderedItemPattern, func(m []string) Block {
		return OrderedItem{Text: m[1]}
	}},
	{KindImage, imagePattern, func(m []string) Block {
		return Image{Alt: m[1], URL: m[2]}
	}},
	{KindLink, linkPattern, func(m []string) Block {
		return Link{Label: m[1], URL: m[2]}
	}},
	{KindHorizontalRule, horizontalRuleRegexp, func([]string) Block {
		return HorizontalRule{}
	}},
}

// Classify returns the block a single line represents.
// It never fails: a line no rule matches, including "", is a Paragraph
// holding the line unchanged.
func Classify(line string) Block {
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(line); m != nil {
			return r.build(m)
		}
	}
	return Paragraph{Text: line}
}
