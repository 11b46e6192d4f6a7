package generator

import (
	generror "github.com/Alia5/resjs/internal/codegen/error"
)

// outputPerm is the mode of the generated client file.
const outputPerm = 0o644

// Assemble wraps the rendered core code for its platform.
func Assemble(wrap WrapFunc, core string) string {
	return wrap(core)
}

// Persist replaces the file at path with content. Missing parent
// directories are not created.
func Persist(path, content string) error {
	if err := writeFile(path, []byte(content)); err != nil {
		return &generror.WriteError{Path: path, Err: err}
	}
	return nil
}
