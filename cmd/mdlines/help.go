package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdlines <command> [flags] [args]")
	fmt.Fprintln(w, "       mdlines <input>... [flags]   (same as render)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render markdown as text, HTML or PDF")
	fmt.Fprintln(w, "  stats       Count blocks per document")
	fmt.Fprintln(w, "  themes      List terminal themes")
	fmt.Fprintln(w, "  styles      List HTML styles")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  doctor      Check the environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdlines help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdlines render <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown line by line as terminal text, HTML or PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, http(s) URL, or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, html, pdf (default: text)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (- = stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-document timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --crlf                Normalize CRLF and CR line endings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Terminal:")
	fmt.Fprintln(w, "      --theme <s>           Chroma style name or classic (see 'mdlines themes')")
	fmt.Fprintln(w, "      --width <n>           Width of horizontal rules (0 = terminal width)")
	fmt.Fprintln(w, "      --color <s>           Color mode: auto, always, never")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML/PDF:")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = first header)")
	fmt.Fprintln(w, "  -s, --style <s>           CSS style name, file path, or inline CSS")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (PDF):")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	printFetchUsage(w)
	printOutputControlUsage(w)
}

// printStatsUsage prints usage for the stats command.
func printStatsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdlines stats <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Count lines and blocks of each kind per document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --crlf                Normalize CRLF and CR line endings")
	fmt.Fprintln(w, "      --json                Print JSON instead of a table")
	fmt.Fprintln(w)
	printFetchUsage(w)
	printOutputControlUsage(w)
}

func printFetchUsage(w io.Writer) {
	fmt.Fprintln(w, "Remote documents:")
	fmt.Fprintln(w, "      --fetch-timeout <d>   HTTP timeout (default: 30s)")
	fmt.Fprintln(w, "      --max-bytes <n>       Maximum document size in bytes")
	fmt.Fprintln(w, "      --user-agent <s>      User-Agent header")
	fmt.Fprintln(w)
}

func printOutputControlUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	w := env.Stdout
	switch args[0] {
	case "render":
		printRenderUsage(w)
	case "stats":
		printStatsUsage(w)
	case "completion":
		printCompletionUsage(w)
	case "config":
		fmt.Fprintln(w, "Usage: mdlines config [render flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the configuration a render run would use, as YAML.")
	case "doctor":
		fmt.Fprintln(w, "Usage: mdlines doctor [--json]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check the browser, terminal and system used for rendering.")
	case "themes", "styles", "version", "help":
		fmt.Fprintf(w, "Usage: mdlines %s\n", args[0])
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
