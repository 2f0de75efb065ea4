package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	mdlines "github.com/alnah/go-mdlines"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagNumber
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, e.g. "yaml,yml"
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool // accepts markdown file arguments
}

// completionMeta holds completion hints that the FlagSet cannot express.
type completionMeta struct {
	Values   func() []string // enum values
	FileGlob string          // comma separated extensions
	IsDir    bool            // directory completion
}

func fixed(values ...string) func() []string {
	return func() []string { return values }
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"format":      {Values: mdlines.Formats},
	"color":       {Values: fixed(mdlines.ColorAuto, mdlines.ColorAlways, mdlines.ColorNever)},
	"theme":       {Values: mdlines.ThemeNames},
	"page-size":   {Values: fixed(mdlines.PageSizeLetter, mdlines.PageSizeA4, mdlines.PageSizeLegal)},
	"orientation": {Values: fixed(mdlines.OrientationPortrait, mdlines.OrientationLandscape)},

	"config": {FileGlob: "yaml,yml"},
	"style":  {FileGlob: "css"},

	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int64", "float64", "duration":
			fd.Type = flagNumber
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	renderFlagDefs := extractFlagsFromFlagSet(buildRenderFlagSet(&renderFlags{}))
	statsFlagDefs := extractFlagsFromFlagSet(buildStatsFlagSet(&statsFlags{}))

	return []commandDef{
		{Name: "render", Desc: "Render markdown as text, HTML or PDF", Flags: renderFlagDefs, TakesFiles: true},
		{Name: "stats", Desc: "Count blocks per document", Flags: statsFlagDefs, TakesFiles: true},
		{Name: "themes", Desc: "List terminal themes"},
		{Name: "styles", Desc: "List HTML styles"},
		{Name: "config", Desc: "Print the effective configuration", Flags: renderFlagDefs},
		{Name: "doctor", Desc: "Check the environment", Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "print JSON"}}},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w, getCommands())
	case ShellZsh:
		return generateZsh(w, getCommands())
	case ShellFish:
		return generateFish(w, getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func generateBash(w io.Writer, commands []commandDef) error {
	var sb strings.Builder

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}

	sb.WriteString("# bash completion for mdlines\n")
	sb.WriteString("_mdlines() {\n")
	sb.WriteString("    local cur prev flags\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	sb.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(names, " "))
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n\n")

	sb.WriteString("    case \"$prev\" in\n")
	seen := map[string]bool{}
	for _, c := range commands {
		for _, f := range c.Flags {
			if seen[f.Long] || f.Type == flagBool {
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", pattern, strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\")); return ;;\n", pattern, strings.ReplaceAll(f.FileGlob, ",", "|"))
			case flagDir:
				fmt.Fprintf(&sb, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", pattern)
			default:
				fmt.Fprintf(&sb, "        %s) return ;;\n", pattern)
			}
		}
	}
	sb.WriteString("    esac\n\n")

	sb.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, c := range commands {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "        %s) flags=%q ;;\n", c.Name, strings.Join(flagWords(c.Flags), " "))
	}
	sb.WriteString("    esac\n\n")

	sb.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	sb.WriteString("        COMPREPLY=($(compgen -W \"$flags\" -- \"$cur\"))\n")
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n")
	sb.WriteString("    COMPREPLY=($(compgen -f -X '!*.@(md|markdown)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n")
	sb.WriteString("}\n")
	sb.WriteString("complete -F _mdlines mdlines\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// flagWords lists every spelling of flags, long ones first.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
	}
	for _, f := range flags {
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// zshEscaper escapes characters with a meaning inside _arguments specs.
var zshEscaper = strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)

func generateZsh(w io.Writer, commands []commandDef) error {
	var sb strings.Builder

	sb.WriteString("#compdef mdlines\n\n")
	sb.WriteString("_mdlines() {\n")
	sb.WriteString("  local -a commands\n")
	sb.WriteString("  commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&sb, "    '%s:%s'\n", c.Name, zshEscaper.Replace(c.Desc))
	}
	sb.WriteString("  )\n\n")
	sb.WriteString("  if (( CURRENT == 2 )); then\n")
	sb.WriteString("    _describe 'command' commands\n")
	sb.WriteString("    return\n")
	sb.WriteString("  fi\n\n")
	sb.WriteString("  case $words[2] in\n")
	for _, c := range commands {
		if len(c.Flags) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(&sb, "    %s)\n", c.Name)
		sb.WriteString("      _arguments -s \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "        %s \\\n", zshFlagSpec(f))
		}
		if c.TakesFiles {
			sb.WriteString("        '*:file:_files -g \"*.(md|markdown)\"'\n")
		} else {
			sb.WriteString("        '*: :'\n")
		}
		sb.WriteString("      ;;\n")
	}
	sb.WriteString("  esac\n")
	sb.WriteString("}\n\n")
	sb.WriteString("compdef _mdlines mdlines\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func zshFlagSpec(f flagDef) string {
	desc := zshEscaper.Replace(f.Desc)

	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":%s:_files -g \"*.(%s)\"", f.Long, strings.ReplaceAll(f.FileGlob, ",", "|"))
	case flagDir:
		action = fmt.Sprintf(":%s:_files -/", f.Long)
	default:
		action = fmt.Sprintf(":%s: ", f.Long)
	}

	if f.Short == "" {
		return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// fishEscaper escapes single quotes inside fish single-quoted strings.
var fishEscaper = strings.NewReplacer(`\`, `\\`, "'", `\'`)

func generateFish(w io.Writer, commands []commandDef) error {
	var sb strings.Builder

	sb.WriteString("# fish completion for mdlines\n")
	sb.WriteString("complete -c mdlines -f\n")
	for _, c := range commands {
		fmt.Fprintf(&sb, "complete -c mdlines -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscaper.Replace(c.Desc))
	}

	for _, c := range commands {
		cond := fmt.Sprintf("-n '__fish_seen_subcommand_from %s'", c.Name)
		if c.TakesFiles {
			fmt.Fprintf(&sb, "complete -c mdlines %s -F -a '(__fish_complete_suffix .md .markdown)'\n", cond)
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c mdlines %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += fmt.Sprintf(" -d '%s'", fishEscaper.Replace(f.Desc))
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				exts := strings.Split(f.FileGlob, ",")
				for i, e := range exts {
					exts[i] = "." + e
				}
				line += fmt.Sprintf(" -r -a '(__fish_complete_suffix %s)'", strings.Join(exts, " "))
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			sb.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdlines completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(mdlines completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(mdlines completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    mdlines completion fish > ~/.config/fish/completions/mdlines.fish")
}
