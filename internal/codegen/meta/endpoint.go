package meta

import "strings"

// actionSeparator splits an action name into its HTTP method and URL tail.
const actionSeparator = "_"

// Endpoint is the resolved HTTP location of a single resource action.
type Endpoint struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

// HasMethod reports whether the action name produced a non-empty method.
// Actions such as "_foo" map to an empty method and are kept as-is.
func (e Endpoint) HasMethod() bool { return e.Method != "" }

// ToEndpoint converts resource.action to an Endpoint.
// Examples: ("users", "get") -> GET /users, ("users", "post_activate") -> POST /users/activate.
// Only the first underscore separates the method from the URL tail.
func ToEndpoint(resource, action string) Endpoint {
	method, tail, found := strings.Cut(action, actionSeparator)
	if !found {
		return Endpoint{
			URL:    "/" + resource,
			Method: strings.ToUpper(action),
		}
	}
	return Endpoint{
		URL:    "/" + resource + "/" + tail,
		Method: strings.ToUpper(method),
	}
}
