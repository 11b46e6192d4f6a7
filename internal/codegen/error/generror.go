// Package generror defines the failures a client generation run can end with.
// Each type wraps its cause so errors.Is/errors.As reach the underlying error.
package generror

import "fmt"

// FetchError reports a failed metadata download: transport failure,
// non-success status or a body that is not JSON.
type FetchError struct {
	URL    string
	Status int // HTTP status code, 0 when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch metadata %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch metadata %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TemplateCompileError reports a client template that could not be read, parsed or executed.
type TemplateCompileError struct {
	Name string
	Err  error
}

func (e *TemplateCompileError) Error() string {
	return fmt.Sprintf("compile template %s: %v", e.Name, e.Err)
}

func (e *TemplateCompileError) Unwrap() error { return e.Err }

// WrapperReadError reports a platform wrapper that is missing or unusable.
type WrapperReadError struct {
	Target string
	Path   string
	Err    error
}

func (e *WrapperReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read %s wrapper: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("read %s wrapper %s: %v", e.Target, e.Path, e.Err)
}

func (e *WrapperReadError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the generated client.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
