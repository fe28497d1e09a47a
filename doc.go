// Package md2flyer compiles a markdown-like content file into a one-page
// HTML flyer.
//
// # Quick Start
//
// Compile files on disk with the default settings:
//
//	res, err := md2flyer.CompileFiles(ctx, "content.md", "index.template.html", "index.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range res.Sections {
//	    fmt.Printf("%s: %s\n", s.Box, s.DisplayTitle)
//	}
//
// Or compile in memory:
//
//	c := md2flyer.NewCompiler(md2flyer.WithOrangeTrailer("*"))
//	res, err := c.Compile(ctx, md2flyer.Input{
//	    Content:  content,
//	    Template: template,
//	})
//
// # Content Format
//
// The content file holds exactly five sections separated by lines containing
// only "---". Each section starts with one or more title lines, followed by a
// line made of "=" characters, followed by content lines:
//
//	Spring Fundraiser
//	=================
//	TL;DR: we need your help.
//	Doors open at noon.
//	---
//	...
//
// Sections map by position to the header, gold, dark teal, orange and teal
// boxes of the template.
//
// # Template Placeholders
//
// The template must contain each of these tokens exactly once:
//
//	{{HEADER_TITLE}}     {{HEADER_CONTENT}}
//	{{GOLD_TITLE}}       {{GOLD_CONTENT}}
//	{{DARK_TEAL_TITLE}}  {{DARK_TEAL_CONTENT}}
//	{{ORANGE_TITLE}}     {{ORANGE_CONTENT}}
//	{{TEAL_TITLE}}       {{TEAL_CONTENT}}
//
// Replacement is literal and single-pass. Nothing is written when any stage
// fails.
//
// # PDF Export
//
// PDFExporter renders a generated page to PDF through headless Chrome. The
// go-rod library downloads a managed Chromium on first use. Set
// ROD_BROWSER_BIN to use a pre-installed browser.
package md2flyer
