package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	generror "github.com/Alia5/resjs/internal/codegen/error"
	"github.com/Alia5/resjs/internal/codegen/templates"
)

// Target selects the runtime the generated client is wrapped for.
type Target string

const (
	TargetBrowser Target = "browser"
	TargetServer  Target = "server"
)

var wrapperFiles = map[Target]string{
	TargetBrowser: templates.Web,
	TargetServer:  templates.Node,
}

// ParseTarget accepts the target names and their aliases ("web", "node").
// An empty string selects the browser.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "", "browser", "web":
		return TargetBrowser, nil
	case "server", "node":
		return TargetServer, nil
	default:
		return "", fmt.Errorf("unknown target %q (supported: browser, server)", s)
	}
}

// WrapFunc embeds rendered core code into a platform wrapper.
type WrapFunc func(core string) string

// LoadWrapper reads the wrapper for target from fsys and returns a WrapFunc
// that substitutes the first placeholder occurrence.
func LoadWrapper(fsys fs.FS, target Target) (WrapFunc, error) {
	name, ok := wrapperFiles[target]
	if !ok {
		return nil, &generror.WrapperReadError{Target: string(target), Err: errors.New("unknown target")}
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &generror.WrapperReadError{Target: string(target), Path: name, Err: err}
	}
	wrapper := string(data)
	if !strings.Contains(wrapper, templates.Placeholder) {
		return nil, &generror.WrapperReadError{
			Target: string(target),
			Path:   name,
			Err:    fmt.Errorf("placeholder %s not found", templates.Placeholder),
		}
	}
	return func(core string) string {
		return strings.Replace(wrapper, templates.Placeholder, core, 1)
	}, nil
}
