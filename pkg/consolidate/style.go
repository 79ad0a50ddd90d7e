package consolidate

import (
	"path"
	"strings"
)

// CommentStyle wraps a displayed path into a comment line.
type CommentStyle struct {
	Prefix string
	Suffix string
}

// DefaultStyle applies to every extension missing from CommentStyles, including none.
var DefaultStyle = CommentStyle{Prefix: "# "}

// CommentStyles maps a lowercase extension, dot included, to its comment style.
var CommentStyles = map[string]CommentStyle{
	".py":   {Prefix: "# "},
	".js":   {Prefix: "// "},
	".jsx":  {Prefix: "// "},
	".ts":   {Prefix: "// "},
	".tsx":  {Prefix: "// "},
	".html": {Prefix: "<!-- ", Suffix: " -->"},
	".css":  {Prefix: "<!-- ", Suffix: " -->"},
}

// StyleFor returns the comment style for a slash-separated path.
func StyleFor(p string) CommentStyle {
	if style, ok := CommentStyles[strings.ToLower(path.Ext(p))]; ok {
		return style
	}
	return DefaultStyle
}

// Header returns the header line for p, without the trailing newline.
func Header(p string) string {
	style := StyleFor(p)
	return style.Prefix + p + style.Suffix
}
