package metadata

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/openapi_schema"
)

// Flavor CRUD is also exposed as wsgi actions; those duplicates are skipped.
var skippedActions = map[string]map[string]bool{
	"flavor": {"create": true, "update": true, "delete": true},
}

// actionServices split their /action endpoints into one operation per action.
var actionServices = map[string]bool{
	core.ServiceCompute:      true,
	core.ServiceBlockStorage: true,
}

// ActionNames returns the action names carried by the request body of an
// action endpoint. A oneOf body must declare the "action" discriminator.
func ActionNames(path string, body *openapi3.Schema) ([]string, error) {
	if body == nil {
		return nil, &core.ActionBodyError{Path: path, Reason: "no application/json request body"}
	}

	bodies := []*openapi3.Schema{body}
	if len(body.OneOf) > 0 {
		bodies = openapi_schema.SchemaValues(body.OneOf)
	}
	if len(bodies) > 1 {
		discriminator := openapi_schema.OpenStackExtension(body, core.ExtensionDiscriminator)
		if discriminator != core.DiscriminatorAction {
			return nil, &core.ActionDiscriminatorError{Path: path, Discriminator: discriminator}
		}
	}

	names := make([]string, 0, len(bodies))
	for _, b := range bodies {
		name := openapi_schema.OpenStackExtension(b, core.ExtensionActionName)
		if name == "" {
			props := openapi_schema.PropertyNames(b)
			if len(props) == 0 {
				return nil, &core.ActionBodyError{Path: path, Reason: "action body has neither action-name nor properties"}
			}
			name = props[0]
		}
		names = append(names, name)
	}
	return names, nil
}

// isSkippedAction reports whether an action duplicates a CRUD endpoint.
func isSkippedAction(resourceName, actionName string) bool {
	return skippedActions[resourceName][actionName]
}
