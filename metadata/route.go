package metadata

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/vast-data/go-openstack-codegen/core"
)

// RouteContext is everything the classifier knows about one wire operation.
type RouteContext struct {
	ServiceType  string
	ResourceName string
	Path         string
	Method       string // lower case
	OperationID  string
	// JSONRequest is true when the request body accepts application/json.
	JSONRequest bool
	// Response is the JSON schema of the first 2xx response, if any.
	Response *openapi3.Schema
	// CollectionRoot is true when another path of the document is this path
	// followed by a "/{param}" segment.
	CollectionRoot bool
}

// Segments splits the path on "/". The leading empty segment is kept.
func (c *RouteContext) Segments() []string {
	return strings.Split(c.Path, "/")
}

// LastSegment returns the final path segment.
func (c *RouteContext) LastSegment() string {
	segments := c.Segments()
	return segments[len(segments)-1]
}

// Predicates used by the rule tables.

type predicate func(c *RouteContext) bool

func all(preds ...predicate) predicate {
	return func(c *RouteContext) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

func service(types ...string) predicate {
	return func(c *RouteContext) bool {
		for _, t := range types {
			if c.ServiceType == t {
				return true
			}
		}
		return false
	}
}

func resource(names ...string) predicate {
	return func(c *RouteContext) bool {
		for _, n := range names {
			if c.ResourceName == n {
				return true
			}
		}
		return false
	}
}

func method(m string) predicate {
	return func(c *RouteContext) bool { return c.Method == m }
}

func pathIs(p string) predicate {
	return func(c *RouteContext) bool { return c.Path == p }
}

func pathSuffix(s string) predicate {
	return func(c *RouteContext) bool { return strings.HasSuffix(c.Path, s) }
}

func pathContains(s string) predicate {
	return func(c *RouteContext) bool { return strings.Contains(c.Path, s) }
}

func lastSegmentIn(values ...string) predicate {
	return func(c *RouteContext) bool {
		last := c.LastSegment()
		for _, v := range values {
			if last == v {
				return true
			}
		}
		return false
	}
}

// Resolvers used by the rule tables.

type resolver func(c *RouteContext) string

func constant(key string) resolver {
	return func(*RouteContext) string { return key }
}

func byMethod(keys map[string]string) resolver {
	return func(c *RouteContext) string { return keys[c.Method] }
}

func lastSegment(c *RouteContext) string {
	return c.LastSegment()
}

// updateOrPatch picks "update" for JSON bodies and "patch" otherwise.
func updateOrPatch(c *RouteContext) string {
	if c.JSONRequest {
		return core.KeyUpdate
	}
	return core.KeyPatch
}
