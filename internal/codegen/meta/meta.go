package meta

import (
	"encoding/json"
	"sort"
	"strings"
)

// ReservedPrefix marks directive keys in the metadata document.
const ReservedPrefix = "$"

// Reserved top-level directives.
const (
	KeyAuth      = "$auth"
	KeyURLPrefix = "$url_prefix"
)

// Raw is the metadata document exactly as served by the remote API.
type Raw map[string]json.RawMessage

// Metadata holds the normalized API description the client template renders.
// Shared between the fetch stage and the template renderer.
type Metadata struct {
	AuthHeader        *string                        // lower-cased, nil when the API declares no $auth
	URLPrefix         string                         // $url_prefix or the caller's override
	URLPrefixOverride string                         // set only when the caller supplied a prefix
	Resources         map[string]map[string]Endpoint // resource -> action -> endpoint
}

type authDirective struct {
	Header *string `json:"header"`
}

// IsReserved reports whether key is a directive rather than a resource or action name.
func IsReserved(key string) bool {
	return strings.HasPrefix(key, ReservedPrefix)
}

// Normalize turns a raw metadata document into Metadata.
// Malformed directives fall back to their defaults and never produce an error.
func Normalize(raw Raw) *Metadata {
	directives := make(map[string]json.RawMessage)
	resources := make(map[string]json.RawMessage)
	for k, v := range raw {
		if IsReserved(k) {
			directives[k] = v
		} else {
			resources[k] = v
		}
	}

	md := &Metadata{
		AuthHeader: parseAuthHeader(directives[KeyAuth]),
		URLPrefix:  parseURLPrefix(directives[KeyURLPrefix]),
		Resources:  make(map[string]map[string]Endpoint, len(resources)),
	}
	for name, body := range resources {
		md.Resources[name] = parseActions(name, body)
	}
	return md
}

func parseAuthHeader(data json.RawMessage) *string {
	if len(data) == 0 {
		return nil
	}
	var auth authDirective
	if err := json.Unmarshal(data, &auth); err != nil || auth.Header == nil {
		return nil
	}
	header := strings.ToLower(*auth.Header)
	return &header
}

func parseURLPrefix(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var prefix string
	if err := json.Unmarshal(data, &prefix); err != nil {
		return ""
	}
	return prefix
}

func parseActions(resource string, data json.RawMessage) map[string]Endpoint {
	actions := map[string]Endpoint{}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return actions
	}
	for action := range raw {
		if IsReserved(action) {
			continue
		}
		actions[action] = ToEndpoint(resource, action)
	}
	return actions
}

// OverridePrefix replaces the URL prefix declared by the API. Empty prefixes are ignored.
func (m *Metadata) OverridePrefix(prefix string) {
	if prefix == "" {
		return
	}
	m.URLPrefix = prefix
	m.URLPrefixOverride = prefix
}

// SortedResources returns the resource names in lexical order.
func (m *Metadata) SortedResources() []string {
	names := make([]string, 0, len(m.Resources))
	for name := range m.Resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EndpointCount returns the number of actions over all resources.
func (m *Metadata) EndpointCount() int {
	n := 0
	for _, actions := range m.Resources {
		n += len(actions)
	}
	return n
}

// MissingMethods lists "resource.action" for every endpoint whose action name
// yields an empty HTTP method, sorted.
func (m *Metadata) MissingMethods() []string {
	var out []string
	for resource, actions := range m.Resources {
		for action, ep := range actions {
			if !ep.HasMethod() {
				out = append(out, resource+"."+action)
			}
		}
	}
	sort.Strings(out)
	return out
}
