package gen

// File is one generated artifact.
type File struct {
	// Name is the artifact path, extension included.
	Name    string
	Content string
}

// ItemOutput groups the artifacts generated for one kind of item.
type ItemOutput struct {
	// Files are ordered as their items in the input.
	Files []File
	// Map holds the bare path (no extension) of every item by name.
	Map map[string]string
}

// Output is the result of a compile.
type Output struct {
	Table ItemOutput
	Enum  ItemOutput
}

// Files returns the table artifacts followed by the enum artifacts.
func (o *Output) Files() []File {
	files := make([]File, 0, len(o.Table.Files)+len(o.Enum.Files))
	files = append(files, o.Table.Files...)
	return append(files, o.Enum.Files...)
}
