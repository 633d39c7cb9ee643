package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/joe/pathkit/internal/config"
	"github.com/joe/pathkit/pkg/fspath"
)

func (r *Runner) parse(cmd *config.ParseCmd, style fspath.Style) error {
	p := fspath.NewStyled(cmd.Path, style)

	parts := p.Elements()

	elements := make([]string, 0, len(parts))
	for _, elem := range parts {
		elements = append(elements, strconv.Quote(elem.String()))
	}

	for _, row := range []struct{ name, value string }{
		{"path", p.String()},
		{"style", style.String()},
		{"root_name", p.RootName().String()},
		{"root_directory", p.RootDirectory().String()},
		{"root_path", p.RootPath().String()},
		{"relative_path", p.RelativePath().String()},
		{"parent_path", p.ParentPath().String()},
		{"filename", p.Filename().String()},
		{"stem", p.Stem().String()},
		{"extension", p.Extension().String()},
		{"is_absolute", strconv.FormatBool(p.IsAbsolute())},
		{"generic", p.GenericString()},
		{"normal", p.LexicallyNormal().String()},
		{"elements", "[" + strings.Join(elements, ", ") + "]"},
	} {
		r.printf("%-15s %s\n", row.name, row.value)
	}

	return nil
}

func (r *Runner) join(cmd *config.JoinCmd, style fspath.Style) error {
	if len(cmd.Paths) == 0 {
		return errNoPaths
	}

	joined := fspath.NewStyled(cmd.Paths[0], style)
	for _, elem := range cmd.Paths[1:] {
		joined = joined.JoinString(elem)
	}

	if cmd.Normal {
		joined = joined.LexicallyNormal()
	}

	r.printf("%s\n", joined)

	return nil
}

var errNoPaths = errors.New("join needs at least one path")
