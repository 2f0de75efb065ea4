// Package mdlines renders a line-oriented subset of Markdown.
//
// Every line of a document is classified on its own into one block:
// a header, an unordered or ordered list item, a link, an image, a
// horizontal rule, or a paragraph. There is no cross-line state, so
// classification never fails and any line no rule matches is a paragraph
// holding the line verbatim.
//
// # Classifying and Rendering
//
// Classify maps one line to a Block. Render splits a document on '\n' and
// sends each block to a Sink, followed by a Separator call:
//
//	var rec mdlines.Recorder
//	mdlines.Render("# Title\n* item", &rec)
//	fmt.Println(rec.String())
//
// Rules are tried in a fixed order and the first match wins: header,
// unordered item, ordered item, image, link, horizontal rule. A line such
// as "* [go](http://x)" is therefore an unordered item.
//
// RenderContext checks a context between lines for callers that need to
// stop early.
//
// # Sinks
//
// The package ships several Sink implementations:
//
//   - TextSink writes styled terminal output using a chroma theme
//   - HTMLSink builds an HTML document, grouping consecutive list items
//   - Recorder records calls for assertions
//   - Counter counts blocks by kind
//
// Tee fans one document out to several sinks.
//
// # Converting Documents
//
// Converter wraps the sinks into a single call producing text, HTML or PDF:
//
//	conv, err := mdlines.NewConverter(mdlines.WithStyle("dark"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdlines.Input{
//	    Markdown: "# Hello\n* world",
//	    Format:   mdlines.FormatHTML,
//	})
//
// PDF output prints the HTML with headless Chrome through go-rod. The browser
// is launched on the first PDF conversion only. Relative image and link
// references are resolved against Input.BaseDir, which ConvertFrom sets to
// the directory of a local file.
//
// # Fetching Documents
//
// ConvertFrom reads the document through a DocumentSource first. The default
// AutoSource performs an HTTP GET for http(s) locations and reads local files
// otherwise. Retrieval failures are reported as *FetchError and match
// ErrFetch with errors.Is.
//
// # Parallel Processing
//
// A Converter is not safe for concurrent use. ConverterPool hands out
// converters to goroutines:
//
//	pool := mdlines.NewConverterPool(mdlines.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
package mdlines
