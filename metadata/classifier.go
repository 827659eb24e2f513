package metadata

import (
	"strings"

	"go.uber.org/zap"

	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/openapi_schema"
)

// Rule is one step of the classification cascade. The first rule whose
// Match returns true decides; an empty key from Resolve leaves the
// operation unclassified.
type Rule struct {
	Name    string
	Match   predicate
	Resolve resolver
}

// Operation ids with unusable schemas.
var defaultOperationIDDenylist = []string{
	"project_id/os-hosts:put",
	"os-hosts:put",
	"project_id/os-hosts/id:put",
	"os-hosts/id:put",
}

// Exact-path and exact-resource special cases, evaluated before the
// response shape is looked at.
var specialCaseRules = []Rule{
	{
		Name:    "image-file",
		Match:   pathIs("/v2/images/{image_id}/file"),
		Resolve: byMethod(map[string]string{"put": core.KeyUpload, "get": core.KeyDownload}),
	},
	{
		Name:    "user-password",
		Match:   pathIs("/v3/users/{user_id}/password"),
		Resolve: byMethod(map[string]string{"post": core.KeyUpdate}),
	},
	{
		Name:    "compute-flavor-access",
		Match:   all(service(core.ServiceCompute), resource("flavor/flavor_access"), method("get")),
		Resolve: constant(core.KeyList),
	},
	{
		Name:    "compute-aggregate-image",
		Match:   all(service(core.ServiceCompute), resource("aggregate/image"), method("post")),
		Resolve: constant(core.KeyAction),
	},
	{
		Name:    "compute-server-security-group",
		Match:   all(service(core.ServiceCompute), resource("server/security_group"), method("get")),
		Resolve: constant(core.KeyList),
	},
	{
		Name:    "compute-server-topology",
		Match:   all(service(core.ServiceCompute), resource("server/topology"), method("get")),
		Resolve: constant(core.KeyList),
	},
	{
		Name:    "compute-quota-defaults",
		Match:   all(service(core.ServiceCompute), resource("quota_set"), pathSuffix("defaults")),
		Resolve: constant(core.KeyDefaults),
	},
	{
		Name:    "compute-quota-details",
		Match:   all(service(core.ServiceCompute), resource("quota_set"), pathSuffix("detail")),
		Resolve: constant(core.KeyDetails),
	},
	{
		Name:    "load-balancer-subresource",
		Match:   all(service(core.ServiceLoadBalancer), lastSegmentIn("stats", "status", "failover", "config")),
		Resolve: lastSegment,
	},
}

// Special cases evaluated after the response shape and /action checks.
var lateSpecialCaseRules = []Rule{
	{
		Name:    "image-deactivate",
		Match:   all(service(core.ServiceImage), pathSuffix("/actions/deactivate")),
		Resolve: constant("deactivate"),
	},
	{
		Name:    "image-reactivate",
		Match:   all(service(core.ServiceImage), pathSuffix("/actions/reactivate")),
		Resolve: constant("reactivate"),
	},
	{
		Name:    "volume-transfer-accept",
		Match:   all(service(core.ServiceBlockStorage), pathContains("volume-transfer"), pathSuffix("/accept")),
		Resolve: constant("accept"),
	},
	{
		Name: "qos-spec-association",
		Match: all(service(core.ServiceBlockStorage), pathContains("qos-specs"),
			lastSegmentIn("associate", "disassociate", "disassociate_all", "delete_keys")),
		Resolve: lastSegment,
	},
	{
		Name:    "network-quota-default",
		Match:   all(service(core.ServiceNetwork), pathContains("quota"), pathSuffix("/default")),
		Resolve: constant(core.KeyDefaults),
	},
	{
		Name:    "network-quota-details",
		Match:   all(service(core.ServiceNetwork), pathContains("quota"), pathSuffix("/details")),
		Resolve: constant(core.KeyDetails),
	},
}

// DefaultRules returns the full classification cascade in evaluation order.
func DefaultRules() []Rule {
	rules := []Rule{
		{
			Name:  "instance",
			Match: pathSuffix("}"),
			Resolve: func(c *RouteContext) string {
				if c.Method == "patch" {
					return updateOrPatch(c)
				}
				return map[string]string{
					"get":    core.KeyShow,
					"head":   core.KeyCheck,
					"put":    core.KeyUpdate,
					"post":   core.KeyCreate,
					"delete": core.KeyDelete,
				}[c.Method]
			},
		},
		{
			Name: "detail",
			Match: func(c *RouteContext) bool {
				return strings.HasSuffix(c.Path, "/detail") && c.ResourceName != "quota_set"
			},
			Resolve: byMethod(map[string]string{"get": core.KeyListDetailed}),
		},
	}
	rules = append(rules, specialCaseRules...)
	rules = append(rules,
		Rule{
			Name:    "list-response",
			Match:   all(method("get"), looksLikeList),
			Resolve: constant(core.KeyList),
		},
		Rule{
			Name:    "action",
			Match:   pathSuffix("/action"),
			Resolve: constant(core.KeyAction),
		},
	)
	rules = append(rules, lateSpecialCaseRules...)
	rules = append(rules,
		Rule{
			Name:  "collection",
			Match: func(c *RouteContext) bool { return c.CollectionRoot },
			Resolve: func(c *RouteContext) string {
				if c.Method == "patch" {
					return updateOrPatch(c)
				}
				return map[string]string{
					"get":    core.KeyList,
					"head":   core.KeyCheck,
					"post":   core.KeyCreate,
					"put":    core.KeyReplace,
					"delete": core.KeyDeleteAll,
				}[c.Method]
			},
		},
		Rule{
			Name:  "method",
			Match: func(*RouteContext) bool { return true },
			Resolve: func(c *RouteContext) string {
				switch c.Method {
				case "put":
					return c.LastSegment()
				case "patch":
					return updateOrPatch(c)
				}
				return map[string]string{
					"head":   core.KeyCheck,
					"get":    core.KeyGet,
					"post":   core.KeyCreate,
					"delete": core.KeyDelete,
				}[c.Method]
			},
		},
	)
	return rules
}

// looksLikeList is true for array responses and for object responses that
// carry a property named after the last path segment.
func looksLikeList(c *RouteContext) bool {
	switch {
	case c.Response == nil:
		return false
	case openapi_schema.IsArray(c.Response):
		return true
	case openapi_schema.IsObject(c.Response):
		return openapi_schema.HasProperty(c.Response, c.LastSegment())
	}
	return false
}

// Decision is the outcome of classifying one operation.
type Decision struct {
	Key  string
	Rule string
	// Drop is set when the operation is deliberately excluded.
	Drop bool
}

// RuleHit is the number of operations decided by a rule.
type RuleHit struct {
	Rule string
	Hits int
}

// Classifier assigns operation keys to wire operations of one service.
type Classifier struct {
	serviceType string
	rules       []Rule
	denylist    map[string]bool
	hits        map[string]int
	logger      *zap.Logger
}

// NewClassifier builds a classifier using DefaultRules. extraDenylist adds
// operation ids to the built-in denylist.
func NewClassifier(serviceType string, extraDenylist []string, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	denylist := make(map[string]bool)
	for _, id := range defaultOperationIDDenylist {
		denylist[id] = true
	}
	for _, id := range extraDenylist {
		denylist[id] = true
	}
	return &Classifier{
		serviceType: serviceType,
		rules:       DefaultRules(),
		denylist:    denylist,
		hits:        make(map[string]int),
		logger:      logger,
	}
}

// Classify runs the cascade and the service specific patch pass.
func (c *Classifier) Classify(ctx *RouteContext) Decision {
	if ctx.OperationID == "" || c.denylist[ctx.OperationID] {
		return Decision{Drop: true, Rule: "denylist"}
	}

	var decision Decision
	for _, rule := range c.rules {
		if !rule.Match(ctx) {
			continue
		}
		decision = Decision{Key: rule.Resolve(ctx), Rule: rule.Name}
		break
	}

	if key, rule, drop, patched := patchOperationKey(ctx, decision.Key); patched {
		decision = Decision{Key: key, Rule: rule, Drop: drop}
	}

	c.hits[decision.Rule]++
	c.logger.Debug("classified operation",
		zap.String("path", ctx.Path),
		zap.String("method", ctx.Method),
		zap.String("operation_id", ctx.OperationID),
		zap.String("key", decision.Key),
		zap.String("rule", decision.Rule),
	)
	return decision
}

// RuleHits returns hit counts for every rule in evaluation order, followed
// by the patch pass entries that fired.
func (c *Classifier) RuleHits() []RuleHit {
	seen := make(map[string]bool)
	var out []RuleHit
	for _, rule := range c.rules {
		seen[rule.Name] = true
		out = append(out, RuleHit{Rule: rule.Name, Hits: c.hits[rule.Name]})
	}
	for _, name := range patchRuleNames {
		if !seen[name] {
			seen[name] = true
			out = append(out, RuleHit{Rule: name, Hits: c.hits[name]})
		}
	}
	return out
}
