// Package fspath provides a cross-platform path value type.
//
// A Path owns a single string in the convention of its Style. Component
// boundaries are never stored: every accessor re-parses the string, so a Path
// is plain immutable data that is safe to share between goroutines.
//
//	p := fspath.NewStyled(`C:\photos\2024\beach.tar.gz`, fspath.Windows)
//	p.RootName()  // C:
//	p.ParentPath() // C:\photos\2024
//	p.Stem()      // beach.tar
//	p.Extension() // .gz
package fspath

// Path is a filesystem path in a given Style.
type Path struct {
	text  string
	style Style
}

// New creates a Path in the host's native style.
func New(text string) Path {
	return Path{text: text, style: NativeStyle()}
}

// NewStyled creates a Path parsed with the given style.
func NewStyled(text string, style Style) Path {
	return Path{text: text, style: style}
}

// String returns the path as given, in native separator convention.
func (p Path) String() string {
	return p.text
}

// Style returns the grammar the path is parsed with.
func (p Path) Style() Style {
	return p.style
}

// GenericString returns the path with '/' as the only separator.
func (p Path) GenericString() string {
	if p.style != Windows {
		return p.text
	}

	b := []byte(p.text)
	for i := range b {
		if b[i] == '\\' {
			b[i] = '/'
		}
	}

	return string(b)
}

// Empty reports whether the path has no characters.
func (p Path) Empty() bool {
	return p.text == ""
}

func (p Path) with(text string) Path {
	return Path{text: text, style: p.style}
}

// RootName returns the drive, UNC or device prefix. Always empty for Posix.
func (p Path) RootName() Path {
	return p.with(p.text[:rootNameEnd(p.text, p.style)])
}

// RootDirectory returns the separator run following the root-name.
func (p Path) RootDirectory() Path {
	return p.with(p.text[rootNameEnd(p.text, p.style):rootDirectoryEnd(p.text, p.style)])
}

// RootPath returns RootName followed by RootDirectory.
func (p Path) RootPath() Path {
	return p.with(p.text[:rootDirectoryEnd(p.text, p.style)])
}

// RelativePath returns everything after the root path.
func (p Path) RelativePath() Path {
	return p.with(p.text[rootDirectoryEnd(p.text, p.style):])
}

// ParentPath returns the path with its filename and the separators before it
// removed. A path ending in a separator is its own parent minus that separator.
func (p Path) ParentPath() Path {
	return p.with(p.text[:parentPathEnd(p.text, p.style)])
}

// Filename returns the trailing element; empty when the path ends in a separator.
func (p Path) Filename() Path {
	return p.with(p.text[filenameStart(p.text, p.style):])
}

// Stem returns the filename without its extension.
func (p Path) Stem() Path {
	name := p.text[filenameStart(p.text, p.style):]
	return p.with(name[:extensionStart(name)])
}

// Extension returns the filename suffix starting at its last dot.
func (p Path) Extension() Path {
	name := p.text[filenameStart(p.text, p.style):]
	return p.with(name[extensionStart(name):])
}

func (p Path) HasRootName() bool      { return !p.RootName().Empty() }
func (p Path) HasRootDirectory() bool { return !p.RootDirectory().Empty() }
func (p Path) HasRootPath() bool      { return !p.RootPath().Empty() }
func (p Path) HasRelativePath() bool  { return !p.RelativePath().Empty() }
func (p Path) HasParentPath() bool    { return !p.ParentPath().Empty() }
func (p Path) HasFilename() bool      { return !p.Filename().Empty() }
func (p Path) HasStem() bool          { return !p.Stem().Empty() }
func (p Path) HasExtension() bool     { return !p.Extension().Empty() }

// IsAbsolute reports whether the path identifies a location without reference
// to a current directory. On Windows a drive root-name alone ("C:foo") is not
// enough; a UNC share is.
func (p Path) IsAbsolute() bool {
	return isAbsolute(p.text, p.style)
}

// IsRelative is the negation of IsAbsolute.
func (p Path) IsRelative() bool {
	return !p.IsAbsolute()
}

// Elements returns the path split into root-name, root-directory and
// filename elements. A trailing separator yields a final empty element.
func (p Path) Elements() []Path {
	var elements []Path

	nameEnd := rootNameEnd(p.text, p.style)
	if nameEnd > 0 {
		elements = append(elements, p.with(p.text[:nameEnd]))
	}
	if rootDirectoryEnd(p.text, p.style) > nameEnd {
		elements = append(elements, p.with(string(p.style.PreferredSeparator())))
	}
	for _, name := range relativeElements(p.text, p.style) {
		elements = append(elements, p.with(name))
	}

	return elements
}
