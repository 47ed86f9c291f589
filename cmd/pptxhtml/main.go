// Package main provides the entry point for the pptxhtml CLI.
//
// pptxhtml converts PowerPoint presentations into HTML, one page element per
// slide, with bullet and numbered paragraphs grouped into lists.
//
// Usage:
//
//	pptxhtml convert deck.pptx -o deck.html
//	pptxhtml inspect deck.pptx
//
// See --help for all available options.
package main

func main() {
	Execute()
}
