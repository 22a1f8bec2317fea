// Package markdown splits raw documents into YAML front matter and body
// content, and renders Markdown bodies into HTML via goldmark.
package markdown
