package metadata

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vast-data/go-openstack-codegen/core"
	"github.com/vast-data/go-openstack-codegen/openapi_schema"
)

var testTargets = core.TargetNames{SDK: core.DefaultSDKTarget, CLI: core.DefaultCLITarget}

func buildMetadata(t *testing.T, serviceType, doc string) (*core.Metadata, error) {
	t.Helper()
	spec, err := openapi_schema.LoadFromData([]byte(doc), "")
	require.NoError(t, err)
	return NewBuilder(spec, Options{
		ServiceType: serviceType,
		SpecFile:    "specs/" + serviceType + ".yaml",
		Targets:     testTargets,
	}).Build()
}

func mustBuild(t *testing.T, serviceType, doc string) *core.Metadata {
	t.Helper()
	md, err := buildMetadata(t, serviceType, doc)
	require.NoError(t, err)
	return md
}

const volumesDoc = `
openapi: 3.0.3
info: {title: block-storage, version: "3.71"}
paths:
  /v3/{project_id}/volumes:
    get:
      operationId: project_id/volumes:get
      parameters:
        - {name: name, in: query, schema: {type: string}}
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  volumes: {type: array, items: {type: object}}
    post:
      operationId: project_id/volumes:post
      requestBody:
        content:
          application/json:
            schema: {type: object}
      responses:
        "202": {description: accepted}
  /v3/{project_id}/volumes/detail:
    get:
      operationId: project_id/volumes/detail:get
      parameters:
        - {name: name, in: query, schema: {type: string}}
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  volumes: {type: array, items: {type: object}}
  /v3/{project_id}/volumes/{id}:
    get:
      operationId: project_id/volumes/id:get
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  volume:
                    type: object
                    properties:
                      id: {type: string}
                      name: {type: string}
    put:
      operationId: project_id/volumes/id:put
      requestBody:
        content:
          application/json:
            schema: {type: object}
      responses:
        "200": {description: ok}
    delete:
      operationId: project_id/volumes/id:delete
      responses:
        "202": {description: accepted}
`

func TestBuild_VolumeCollection(t *testing.T) {
	md := mustBuild(t, core.ServiceBlockStorage, volumesDoc)

	require.Equal(t, []string{"block-storage.volume"}, md.ResourceKeys())
	res := md.Resources["block-storage.volume"]
	assert.Equal(t, "v3", res.APIVersion)
	assert.Equal(t, "specs/block-storage.yaml", res.SpecFile)
	assert.Equal(t,
		[]string{"create", "delete", "find", "list", "list_detailed", "show", "update"},
		res.OperationKeys())

	list := res.Operation(core.KeyList)
	assert.Equal(t, core.OperationTypeList, list.OperationType)
	assert.Equal(t, "list", list.Target(testTargets.SDK).ModuleName)
	assert.Nil(t, list.Target(testTargets.CLI), "plain list loses its CLI target next to list_detailed")

	detailed := res.Operation(core.KeyListDetailed)
	assert.Equal(t, "list_detailed", detailed.Target(testTargets.SDK).ModuleName)
	assert.Equal(t, "volume list", detailed.Target(testTargets.CLI).CLIFullCommand)

	update := res.Operation(core.KeyUpdate)
	assert.Equal(t, core.OperationTypeSet, update.OperationType)
	assert.Equal(t, "set", update.Target(testTargets.SDK).ModuleName)
	assert.Equal(t, "volume set", update.Target(testTargets.CLI).CLIFullCommand)

	show := res.Operation(core.KeyShow)
	assert.Equal(t, "get", show.Target(testTargets.SDK).ModuleName)
	assert.Equal(t, "get", show.Target(testTargets.CLI).SDKModName)
	assert.Equal(t, "show", show.Target(testTargets.CLI).ModuleName)
	assert.True(t, show.Target(testTargets.CLI).FindImplementedBySDK)
	assert.True(t, res.Operation(core.KeyDelete).Target(testTargets.CLI).FindImplementedBySDK)
	assert.False(t, res.Operation(core.KeyCreate).Target(testTargets.CLI).FindImplementedBySDK)

	find := res.Operation(core.KeyFind)
	require.NotNil(t, find)
	assert.Equal(t, core.OperationTypeFind, find.OperationType)
	assert.Equal(t, "project_id/volumes/detail:get", find.OperationID)
	assert.Nil(t, find.Target(testTargets.CLI))
	sdk := find.Target(testTargets.SDK)
	assert.Equal(t, "find", sdk.ModuleName)
	assert.Equal(t, "name", sdk.NameField)
	assert.True(t, sdk.NameFilterSupported)
	assert.Equal(t, "block_storage::v3::volume", sdk.SDKModPath)
	assert.Equal(t, core.KeyListDetailed, sdk.ListMod)
}

func TestBuild_Idempotent(t *testing.T) {
	first, err := mustBuild(t, core.ServiceBlockStorage, volumesDoc).Fingerprint()
	require.NoError(t, err)
	second, err := mustBuild(t, core.ServiceBlockStorage, volumesDoc).Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	md := mustBuild(t, core.ServiceBlockStorage, volumesDoc)
	digests := make(map[string]bool)
	for i := 0; i < 20; i++ {
		fp, err := md.Fingerprint()
		require.NoError(t, err)
		digests[fp] = true
	}
	assert.Len(t, digests, 1)

	a, err := mustBuild(t, core.ServiceBlockStorage, volumesDoc).ToYAML()
	require.NoError(t, err)
	b, err := mustBuild(t, core.ServiceBlockStorage, volumesDoc).ToYAML()
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

const placeholderDoc = `
openapi: 3.0.3
info: {title: things, version: "2.0"}
paths:
  /v2/things/{id}:
    get:
      operationId: things/id:get
      responses:
        "200":
          description: a list shaped response on an instance path
          content:
            application/json:
              schema: {type: array, items: {type: object}}
    delete:
      operationId: things/id:delete
      responses:
        "204": {description: gone}
    patch:
      operationId: things/id:patch
      requestBody:
        content:
          application/openstack-images-v2.1-json-patch:
            schema: {type: array}
      responses:
        "200": {description: ok}
    options:
      operationId: things/id:options
      responses:
        "200": {description: ok}
  /v2/things/{id}/reset:
    put:
      responses:
        "200": {description: no operation id}
`

func TestBuild_PlaceholderPath(t *testing.T) {
	md := mustBuild(t, "things", placeholderDoc)
	res := md.Resources["things.thing"]
	require.NotNil(t, res)

	assert.Equal(t, []string{"delete", "patch", "show"}, res.OperationKeys())
	assert.Equal(t, core.OperationTypeShow, res.Operation(core.KeyShow).OperationType)
	assert.Equal(t, core.OperationTypeDelete, res.Operation(core.KeyDelete).OperationType)
	assert.Equal(t, core.OperationTypeSet, res.Operation(core.KeyPatch).OperationType)
	assert.Nil(t, res.Operation(core.KeyFind), "find needs a list operation")
}

func TestBuild_WildcardPatchBody(t *testing.T) {
	doc := `
openapi: 3.0.3
info: {title: things, version: "2.0"}
paths:
  /v2/things/{id}:
    patch:
      operationId: things/id:patch
      requestBody:
        content:
          "*/*":
            schema: {type: object}
      responses:
        "200": {description: ok}
`
	md := mustBuild(t, "things", doc)
	assert.Equal(t, []string{"patch"}, md.Resources["things.thing"].OperationKeys())
}

const conflictDoc = `
openapi: 3.0.3
info: {title: things, version: "2.0"}
paths:
  /v2/things/{id}:
    get:
      operationId: things/id:get
      responses:
        "200": {description: ok}
  /v2/things/{name}:
    get:
      operationId: things/name:get
      responses:
        "200": {description: ok}
`

func TestBuild_ConflictIsFatal(t *testing.T) {
	_, err := buildMetadata(t, "things", conflictDoc)
	require.Error(t, err)
	assert.True(t, core.IsOperationConflictErr(err))
	assert.True(t, core.IsFatal(err))
}

const serverActionsDoc = `
openapi: 3.0.3
info: {title: compute, version: "2.96"}
paths:
  /v2.1/servers:
    get:
      operationId: servers:get
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  servers: {type: array, items: {type: object}}
  /v2.1/servers/{id}:
    get:
      operationId: servers/id:get
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  server:
                    type: object
                    properties:
                      name: {type: string}
  /v2.1/servers/{id}/action:
    post:
      operationId: servers/id/action:post
      requestBody:
        content:
          application/json:
            schema:
              x-openstack:
                discriminator: action
              oneOf:
                - type: object
                  properties:
                    reboot: {type: object}
                - type: object
                  properties:
                    resize: {type: object}
                - type: object
                  x-openstack:
                    action-name: os-migrateLive
                  properties:
                    os-migrateLive: {type: object}
      responses:
        "202": {description: accepted}
  /v2.1/flavors/{id}/action:
    post:
      operationId: flavors/id/action:post
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                create: {type: object}
      responses:
        "202": {description: accepted}
`

func TestBuild_ActionSplit(t *testing.T) {
	md := mustBuild(t, core.ServiceCompute, serverActionsDoc)
	res := md.Resources["compute.server"]
	require.NotNil(t, res)

	for _, name := range []string{"reboot", "resize", "os-migrate-live"} {
		op := res.Operation(name)
		require.NotNil(t, op, "action %s", name)
		assert.Equal(t, core.OperationTypeAction, op.OperationType)
		assert.Equal(t, "servers/id/action:post", op.OperationID)
	}
	assert.Nil(t, res.Operation(core.KeyAction))

	reboot := res.Operation("reboot")
	assert.Equal(t, "reboot", reboot.Target(testTargets.SDK).ModuleName)
	assert.Equal(t, "reboot", reboot.Target(testTargets.SDK).OperationName)
	assert.Equal(t, "server reboot", reboot.Target(testTargets.CLI).CLIFullCommand)

	migrate := res.Operation("os-migrate-live")
	assert.Equal(t, "os_migrate_live", migrate.Target(testTargets.SDK).ModuleName)
	assert.Equal(t, "os-migrateLive", migrate.Target(testTargets.CLI).OperationName)
	assert.Equal(t, "server live-migrate", migrate.Target(testTargets.CLI).CLIFullCommand)

	// The show response has no id, so no find and no find hints.
	assert.Nil(t, res.Operation(core.KeyFind))
	assert.False(t, reboot.Target(testTargets.CLI).FindImplementedBySDK)

	flavor := md.Resources["compute.flavor"]
	require.NotNil(t, flavor)
	assert.Empty(t, flavor.Operations, "flavor create action duplicates the CRUD endpoint")
}

const missingDiscriminatorDoc = `
openapi: 3.0.3
info: {title: compute, version: "2.1"}
paths:
  /v2.1/servers/{id}/action:
    post:
      operationId: servers/id/action:post
      requestBody:
        content:
          application/json:
            schema:
              oneOf:
                - type: object
                  properties:
                    reboot: {type: object}
                - type: object
                  properties:
                    resize: {type: object}
      responses:
        "202": {description: accepted}
`

func TestBuild_ActionWithoutDiscriminatorIsFatal(t *testing.T) {
	_, err := buildMetadata(t, core.ServiceCompute, missingDiscriminatorDoc)
	require.Error(t, err)
	assert.True(t, core.IsActionDiscriminatorErr(err))
	assert.True(t, core.IsFatal(err))
}

const objectStoreDoc = `
openapi: 3.0.3
info: {title: object-store, version: "1.0"}
paths:
  /v1/{account}:
    get:
      operationId: account:get
      responses:
        "200": {description: ok}
    head:
      operationId: account:head
      responses:
        "204": {description: ok}
  /v1/{account}/{container}:
    get:
      operationId: container:get
      responses:
        "200": {description: ok}
    put:
      operationId: container:put
      responses:
        "201": {description: created}
  /v1/{account}/{container}/{object}:
    get:
      operationId: object:get
      responses:
        "200": {description: ok}
    put:
      operationId: object:put
      responses:
        "201": {description: created}
    post:
      operationId: object:post
      responses:
        "202": {description: accepted}
`

func TestBuild_ObjectStore(t *testing.T) {
	md := mustBuild(t, core.ServiceObjectStore, objectStoreDoc)
	assert.Equal(t, []string{"object-store.account", "object-store.container", "object-store.object"}, md.ResourceKeys())

	container := md.Resources["object-store.container"]
	get := container.Operation(core.KeyGet)
	require.NotNil(t, get)
	assert.Equal(t, core.OperationTypeGet, get.OperationType)
	assert.Equal(t, "object list", get.Target(testTargets.CLI).CLIFullCommand)
	assert.Equal(t, core.OperationTypeCreate, container.Operation(core.KeyCreate).OperationType)

	account := md.Resources["object-store.account"]
	assert.Equal(t, "container list", account.Operation(core.KeyGet).Target(testTargets.CLI).CLIFullCommand)
	assert.Equal(t, "account show", account.Operation("head").Target(testTargets.CLI).CLIFullCommand)

	object := md.Resources["object-store.object"]
	assert.Equal(t, core.OperationTypeDownload, object.Operation(core.KeyGet).OperationType)
	assert.Equal(t, "object download", object.Operation(core.KeyGet).Target(testTargets.CLI).CLIFullCommand)
	assert.Equal(t, core.OperationTypeUpload, object.Operation("put").OperationType)
	assert.Equal(t, "object upload", object.Operation("put").Target(testTargets.CLI).CLIFullCommand)
	assert.Equal(t, core.OperationTypeSet, object.Operation(core.KeyUpdate).OperationType)
}

const identityDoc = `
openapi: 3.0.3
info: {title: identity, version: "3.14"}
paths:
  /v3/projects/{project_id}/tags/{tag}:
    head:
      operationId: projects/project_id/tags/tag:head
      responses:
        "204": {description: ok}
    put:
      operationId: projects/project_id/tags/tag:put
      responses:
        "201": {description: ok}
  /v3/domains/config/{group}/default:
    get:
      operationId: domains/config/group/default:get
      responses:
        "200": {description: ok}
    head:
      operationId: domains/config/group/default:head
      responses:
        "200": {description: ok}
  /v3/OS-FEDERATION/mappings/{mapping_id}:
    put:
      operationId: OS-FEDERATION/mappings/mapping_id:put
      responses:
        "201": {description: created}
`

func TestBuild_Identity(t *testing.T) {
	md := mustBuild(t, core.ServiceIdentity, identityDoc)

	tag := md.Resources["identity.project/tag"]
	require.NotNil(t, tag)
	check := tag.Operation(core.KeyCheck)
	require.NotNil(t, check)
	assert.NotNil(t, check.Target(testTargets.SDK))
	assert.Nil(t, check.Target(testTargets.CLI), "identity HEAD operations have no CLI target")
	assert.Equal(t, "project tag add", tag.Operation(core.KeyUpdate).Target(testTargets.CLI).CLIFullCommand)

	group := md.Resources["identity.domain/config/group"]
	require.NotNil(t, group)
	assert.Equal(t, []string{"default"}, group.OperationKeys())
	def := group.Operation(core.KeyDefault)
	assert.Equal(t, core.OperationTypeShow, def.OperationType)
	assert.Equal(t, "config", def.Target(testTargets.SDK).ResponseKey)

	mapping := md.Resources["identity.OS_FEDERATION/mapping"]
	require.NotNil(t, mapping)
	create := mapping.Operation(core.KeyCreate)
	require.NotNil(t, create)
	assert.Equal(t, "federation mapping create", create.Target(testTargets.CLI).CLIFullCommand)
}

func TestBuild_DeprecatedComputeResource(t *testing.T) {
	doc := `
openapi: 3.0.3
info: {title: compute, version: "2.1"}
paths:
  /v2.1/os-cloudpipe:
    get:
      operationId: os-cloudpipe:get
      responses:
        "200": {description: ok}
`
	md := mustBuild(t, core.ServiceCompute, doc)
	assert.Empty(t, md.Resources)
}

func TestBuilder_APIVersionFallback(t *testing.T) {
	doc := `
openapi: 3.0.3
info: {title: odd, version: "latest.1"}
paths: {}
`
	spec, err := openapi_schema.LoadFromData([]byte(doc), "")
	require.NoError(t, err)
	assert.Equal(t, "vlatest", NewBuilder(spec, Options{ServiceType: "odd"}).APIVersion())
}

func TestBuilder_RuleHits(t *testing.T) {
	spec, err := openapi_schema.LoadFromData([]byte(volumesDoc), "")
	require.NoError(t, err)
	b := NewBuilder(spec, Options{ServiceType: core.ServiceBlockStorage})
	_, err = b.Build()
	require.NoError(t, err)

	hits := make(map[string]int)
	for _, hit := range b.RuleHits() {
		hits[hit.Rule] = hit.Hits
	}
	assert.Equal(t, 3, hits["instance"])
	assert.Equal(t, 1, hits["detail"])
	assert.Equal(t, 1, hits["list-response"])
	assert.Equal(t, 1, hits["collection"])
	assert.Contains(t, hits, "image-file")
	assert.Equal(t, 0, hits["image-file"])
	assert.Contains(t, hits, patchRuleObjectStorage)
}

// collectionDoc builds a network collection with a list and a show operation.
// The show response wraps an object carrying showProperties.
func collectionDoc(collection, wrapper, queryParam string, showProperties ...string) string {
	var params string
	if queryParam != "" {
		params = fmt.Sprintf("      parameters:\n        - {name: %s, in: query, schema: {type: string}}\n", queryParam)
	}
	props := make([]string, 0, len(showProperties))
	for _, p := range showProperties {
		props = append(props, p+": {type: string}")
	}
	return fmt.Sprintf(`
openapi: 3.0.3
info: {title: network, version: "2.0"}
paths:
  /v2.0/%[1]s:
    get:
      operationId: %[1]s:get
%[3]s      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  %[1]s: {type: array, items: {type: object}}
  /v2.0/%[1]s/{id}:
    get:
      operationId: %[1]s/id:get
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  %[2]s:
                    type: object
                    properties: {%[4]s}
`, collection, wrapper, params, strings.Join(props, ", "))
}

func TestBuild_Find(t *testing.T) {
	tests := []struct {
		name          string
		doc           string
		resource      string
		wantFind      bool
		nameField     string
		nameFilter    bool
		showFindBySDK bool
	}{
		{
			name:          "id and name with name filter",
			doc:           collectionDoc("networks", "network", "name", "id", "name"),
			resource:      "network.network",
			wantFind:      true,
			nameField:     "name",
			nameFilter:    true,
			showFindBySDK: true,
		},
		{
			name:     "show without id",
			doc:      collectionDoc("networks", "network", "name", "name"),
			resource: "network.network",
		},
		{
			name:     "show without name",
			doc:      collectionDoc("networks", "network", "name", "id"),
			resource: "network.network",
		},
		{
			name:          "floatingip is found by address",
			doc:           collectionDoc("floatingips", "floatingip", "floating_ip_address", "id", "floating_ip_address"),
			resource:      "network.floatingip",
			wantFind:      true,
			nameField:     "floating_ip_address",
			nameFilter:    true,
			showFindBySDK: true,
		},
		{
			name:          "list without name query parameter",
			doc:           collectionDoc("ports", "port", "", "id", "name"),
			resource:      "network.port",
			wantFind:      true,
			nameField:     "name",
			showFindBySDK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := mustBuild(t, core.ServiceNetwork, tt.doc)
			res := md.Resources[tt.resource]
			require.NotNil(t, res, md.ResourceKeys())

			show := res.Operation(core.KeyShow)
			require.NotNil(t, show)
			assert.Equal(t, tt.showFindBySDK, show.Target(testTargets.CLI).FindImplementedBySDK)

			find := res.Operation(core.KeyFind)
			if !tt.wantFind {
				assert.Nil(t, find)
				assert.Equal(t, []string{"list", "show"}, res.OperationKeys())
				return
			}
			require.NotNil(t, find)
			sdk := find.Target(testTargets.SDK)
			assert.Equal(t, tt.nameField, sdk.NameField)
			assert.Equal(t, tt.nameFilter, sdk.NameFilterSupported)
			assert.Equal(t, core.KeyList, sdk.ListMod)
			assert.Equal(t, "network::v2::"+strings.TrimPrefix(tt.resource, "network."), sdk.SDKModPath)
		})
	}
}
