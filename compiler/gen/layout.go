package gen

import (
	"path"
	"strings"

	"github.com/syssam/ormgen/compiler/load"
)

// Layout places the generated artifacts of tables and enums. It is the only
// place that knows about output paths.
type Layout struct {
	// Root prefixes every path, "." by default.
	Root string
	// TableDir and EnumDir are relative to Root.
	TableDir string
	EnumDir  string
}

// DefaultLayout stores tables under ./model/table and enums under ./model/enum.
var DefaultLayout = Layout{
	Root:     ".",
	TableDir: "model/table",
	EnumDir:  "model/enum",
}

func (l Layout) validate() error {
	switch {
	case l.Root == "":
		return NewConfigError("Layout", l, "root cannot be empty")
	case l.TableDir == "" || l.EnumDir == "":
		return NewConfigError("Layout", l, "table and enum directories cannot be empty")
	case path.IsAbs(l.TableDir) || path.IsAbs(l.EnumDir):
		return NewConfigError("Layout", l, "table and enum directories must be relative")
	}
	return nil
}

func (l Layout) dir(kind load.Kind) string {
	if kind == load.KindEnum {
		return strings.Trim(l.EnumDir, "/")
	}
	return strings.Trim(l.TableDir, "/")
}

// Path returns the path of the artifact generated for the named item.
// The extension is appended as is; pass "" for the bare reference used in
// name to path maps.
func (l Layout) Path(kind load.Kind, name, ext string) string {
	return strings.TrimSuffix(l.Root, "/") + "/" + l.dir(kind) + "/" + name + ext
}

// ItemPath is like Path for the given item.
func (l Layout) ItemPath(it load.Item, ext string) string {
	return l.Path(it.ItemKind(), it.ItemName(), ext)
}

// Import returns the bare path of the named item relative to the table
// directory, where the entity artifacts importing it live.
func (l Layout) Import(kind load.Kind, name string) string {
	depth := strings.Count(path.Clean(l.dir(load.KindTable)), "/") + 1
	return strings.Repeat("../", depth) + l.dir(kind) + "/" + name
}
