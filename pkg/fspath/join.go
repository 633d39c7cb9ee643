package fspath

import "strings"

// Join appends rhs to p following these rules, in order:
//
//  1. an absolute rhs replaces p;
//  2. an rhs root-name that differs textually from p's replaces p ("c:" and
//     "C:" differ);
//  3. an rhs root-directory keeps only p's root-name;
//  4. otherwise one preferred separator is inserted unless p already ends in
//     one. A bare root-name of three or more bytes (\\server) still gets the
//     separator, a drive ("C:") does not.
//
// rhs is reinterpreted in p's style.
func (p Path) Join(rhs Path) Path {
	return p.JoinString(rhs.text)
}

// JoinString is Join with a raw string operand.
func (p Path) JoinString(rhs string) Path {
	style := p.style

	if isAbsolute(rhs, style) {
		return p.with(rhs)
	}

	rhsNameEnd := rootNameEnd(rhs, style)
	lhsNameEnd := rootNameEnd(p.text, style)

	if rhsNameEnd > 0 && rhs[:rhsNameEnd] != p.text[:lhsNameEnd] {
		return p.with(rhs)
	}

	if rootDirectoryEnd(rhs, style) > rhsNameEnd {
		return p.with(p.text[:lhsNameEnd] + rhs[rhsNameEnd:])
	}

	var b strings.Builder
	b.Grow(len(p.text) + 1 + len(rhs))
	b.WriteString(p.text)

	if lhsNameEnd == len(p.text) {
		if lhsNameEnd >= 3 {
			b.WriteByte(style.PreferredSeparator())
		}
	} else if !style.IsSeparator(p.text[len(p.text)-1]) {
		b.WriteByte(style.PreferredSeparator())
	}

	b.WriteString(rhs[rhsNameEnd:])

	return p.with(b.String())
}

// JoinAll folds Join over elems.
func (p Path) JoinAll(elems ...string) Path {
	for _, elem := range elems {
		p = p.JoinString(elem)
	}

	return p
}

// Concat appends s without inserting a separator.
func (p Path) Concat(s string) Path {
	return p.with(p.text + s)
}

// RemoveFilename drops the trailing filename, keeping the separator before it.
func (p Path) RemoveFilename() Path {
	return p.with(p.text[:filenameStart(p.text, p.style)])
}

// ReplaceFilename swaps the trailing filename for name.
func (p Path) ReplaceFilename(name string) Path {
	return p.RemoveFilename().JoinString(name)
}

// ReplaceExtension swaps the extension. A missing leading dot is added; an
// empty ext removes the extension.
func (p Path) ReplaceExtension(ext string) Path {
	text := p.text[:len(p.text)-len(p.Extension().text)]
	if ext != "" && ext[0] != '.' {
		text += "."
	}

	return p.with(text + ext)
}

// MakePreferred converts every separator to the preferred one.
func (p Path) MakePreferred() Path {
	if p.style != Windows {
		return p
	}

	return p.with(strings.ReplaceAll(p.text, "/", `\`))
}
