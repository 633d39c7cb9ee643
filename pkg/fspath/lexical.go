package fspath

import (
	"cmp"
	"strings"
)

// LexicallyNormal returns the normal form of p without touching the
// filesystem: separator runs collapse to one preferred separator, "."
// elements disappear, "name/.." pairs fold away and ".." directly under a
// root-directory is dropped. A trailing separator is kept where the last
// element named a directory; an empty result becomes ".".
func (p Path) LexicallyNormal() Path {
	if p.text == "" {
		return p
	}

	sep := string(p.style.PreferredSeparator())
	nameEnd := rootNameEnd(p.text, p.style)
	rootName := normalizeRootName(p.text[:nameEnd], p.style)
	hasRootDir := rootDirectoryEnd(p.text, p.style) > nameEnd

	var (
		out      []string
		trailing bool
	)

	for _, elem := range relativeElements(p.text, p.style) {
		trailing = false

		switch elem {
		case "", ".":
			trailing = true
		case "..":
			switch n := len(out); {
			case n > 0 && out[n-1] != "..":
				out = out[:n-1]
				trailing = true
			case hasRootDir:
			default:
				out = append(out, elem)
			}
		default:
			out = append(out, elem)
		}
	}

	var b strings.Builder
	b.WriteString(rootName)
	if hasRootDir {
		b.WriteString(sep)
	}
	b.WriteString(strings.Join(out, sep))
	if trailing && len(out) > 0 && out[len(out)-1] != ".." {
		b.WriteString(sep)
	}

	if b.Len() == 0 {
		return p.with(".")
	}

	return p.with(b.String())
}

// LexicallyRelative returns p expressed relative to base, or an empty path
// when no such lexical relation exists (different roots, or base climbs
// above its own start with "..").
func (p Path) LexicallyRelative(base Path) Path {
	if normalizeRootName(p.RootName().text, p.style) != normalizeRootName(base.RootName().text, p.style) ||
		p.IsAbsolute() != base.IsAbsolute() ||
		p.HasRootDirectory() != base.HasRootDirectory() {
		return p.with("")
	}

	target := relativeElements(p.text, p.style)
	from := relativeElements(base.text, p.style)

	i := 0
	for i < len(target) && i < len(from) && target[i] == from[i] {
		i++
	}

	if i == len(target) && i == len(from) {
		return p.with(".")
	}

	climb := 0
	for _, elem := range from[i:] {
		switch elem {
		case "..":
			climb--
		case ".", "":
		default:
			climb++
		}
	}

	if climb < 0 {
		return p.with("")
	}

	if climb == 0 && (i == len(target) || target[i] == "") {
		return p.with(".")
	}

	result := p.with("")
	for range climb {
		result = result.JoinString("..")
	}
	for _, elem := range target[i:] {
		result = result.JoinString(elem)
	}

	return result
}

// LexicallyProximate is LexicallyRelative, falling back to p itself when no
// relative form exists.
func (p Path) LexicallyProximate(base Path) Path {
	if rel := p.LexicallyRelative(base); !rel.Empty() {
		return rel
	}

	return p
}

// Compare orders paths element-wise: root-name first, then presence of a
// root-directory, then each relative element.
func (p Path) Compare(other Path) int {
	if c := strings.Compare(
		normalizeRootName(p.RootName().text, p.style),
		normalizeRootName(other.RootName().text, p.style),
	); c != 0 {
		return c
	}

	if a, b := p.HasRootDirectory(), other.HasRootDirectory(); a != b {
		if a {
			return 1
		}
		return -1
	}

	left := relativeElements(p.text, p.style)
	right := relativeElements(other.text, p.style)
	for i := 0; i < len(left) && i < len(right); i++ {
		if c := strings.Compare(left[i], right[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(left), len(right))
}

// Equal reports whether Compare returns 0. "a//b" equals "a/b".
func (p Path) Equal(other Path) bool {
	return p.Compare(other) == 0
}
