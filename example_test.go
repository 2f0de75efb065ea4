package mdlines_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	mdlines "github.com/alnah/go-mdlines"
)

// Example classifies single lines.
func Example() {
	for _, line := range []string{"## Setup", "3. Install", "![logo](logo.png)", "---", "plain"} {
		b := mdlines.Classify(line)
		fmt.Printf("%-15s %+v\n", b.Kind(), b)
	}
	// Output:
	// header          {Text:Setup Level:2}
	// ordered-item    {Text:Install}
	// image           {Alt:logo URL:logo.png}
	// horizontal-rule {}
	// paragraph       {Text:plain}
}

// ExampleRender records the sink calls for a small document.
func ExampleRender() {
	var rec mdlines.Recorder
	mdlines.Render("# Title\n* item\n[docs](https://example.com)", &rec)
	fmt.Println(rec.String())
	// Output:
	// Header Level=1 Text="Title"
	// Separator
	// UnorderedItem Text="item"
	// Separator
	// Link Text="docs" URL="https://example.com"
	// Separator
}

// ExampleNewTextSink writes a document to the terminal without colours.
func ExampleNewTextSink() {
	sink, err := mdlines.NewTextSink(os.Stdout, &mdlines.TextSettings{
		Theme: "classic",
		Color: mdlines.ColorNever,
		Width: 12,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mdlines.Render("# Groceries\n* milk\n* eggs\n---", sink)
	// Output:
	// Groceries
	//   • milk
	//   • eggs
	// ────────────
}

// ExampleConverter_Convert renders HTML. PDF output needs Chrome.
func ExampleConverter_Convert() {
	conv, err := mdlines.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), mdlines.Input{
		Markdown: "# Hello\n* one\n* two",
		Format:   mdlines.FormatHTML,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.Output), "<ul><li>one</li>") {
		fmt.Println("HTML generated successfully")
	}
	fmt.Println(result.Stats.Lines, "lines")
	// Output:
	// HTML generated successfully
	// 3 lines
}

// ExampleConverterPool shows parallel rendering with shared options.
func ExampleConverterPool() {
	pool := mdlines.NewConverterPool(mdlines.ResolvePoolSize(2),
		mdlines.WithTextSettings(&mdlines.TextSettings{Color: mdlines.ColorNever}))
	defer pool.Close()

	conv, err := pool.Acquire()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer pool.Release(conv)

	result, err := conv.Convert(context.Background(), mdlines.Input{Markdown: "plain text"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(result.Output))
	// Output: plain text
}
