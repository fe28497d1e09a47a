package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2flyer [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the flyer page (default)")
	fmt.Fprintln(w, "  preview    Render content as a proofreading page")
	fmt.Fprintln(w, "  init       Create a starter content file and template")
	fmt.Fprintln(w, "  inspect    List the placeholders of a template")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2flyer help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2flyer [build] [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the flyer page from a content file and an HTML template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Project directory; relative paths resolve against it (default .)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --content <path>      Content file (default content.md)")
	fmt.Fprintln(w, "      --template <path>     Template file (default index.template.html)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default index.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Orange Box:")
	fmt.Fprintln(w, "      --trailer <s>         Symbol closing the main paragraph (default 🤎)")
	fmt.Fprintln(w, "      --no-trailer          Omit the trailer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf[=path]          Also export PDF (default: output with .pdf)")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, a5, legal, tabloid")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF export timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "  -w, --watch               Rebuild when content or template changes")
	fmt.Fprintln(w, "      --debounce <d>        Delay before rebuilding (default 200ms)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2flyer preview [content] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the content file as a plain page listing each section, the box")
	fmt.Fprintln(w, "it fills, and its source. Useful for proofreading before a build.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content    Content file (default content.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default <content>.preview.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2flyer init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create content.md and index.template.html in dir (default .).")
	fmt.Fprintln(w, "Existing files are never overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2flyer inspect [template]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List every placeholder of the template with its line and element,")
	fmt.Fprintln(w, "and report missing or repeated box placeholders.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  template    Template file (default index.template.html)")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2flyer version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2flyer help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
