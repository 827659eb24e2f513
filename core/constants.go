package core

// Vocabularies shared by the classifier, the name synthesizer and the output
// document. Values are written verbatim into <service_type>_metadata.yaml.

// Service types handled with service-specific rules
const (
	ServiceBlockStorage = "block-storage"
	ServiceVolume       = "volume" // legacy alias of block-storage
	ServiceCompute      = "compute"
	ServiceIdentity     = "identity"
	ServiceImage        = "image"
	ServiceLoadBalancer = "load-balancer"
	ServiceNetwork      = "network"
	ServiceObjectStore  = "object-store"
	ServiceBaremetal    = "baremetal"
	ServiceSharedFS     = "shared-file-system"
)

// Default target names. They are configurable per run.
const (
	DefaultSDKTarget = "rust-sdk"
	DefaultCLITarget = "rust-cli"
)

// Coarse operation types
const (
	OperationTypeList     = "list"
	OperationTypeShow     = "show"
	OperationTypeGet      = "get"
	OperationTypeSet      = "set"
	OperationTypeCreate   = "create"
	OperationTypeDelete   = "delete"
	OperationTypeFind     = "find"
	OperationTypeAction   = "action"
	OperationTypeDownload = "download"
	OperationTypeUpload   = "upload"
)

// Operation keys with a dedicated meaning in the pipeline
const (
	KeyList         = "list"
	KeyListDetailed = "list_detailed"
	KeyShow         = "show"
	KeyGet          = "get"
	KeyCheck        = "check"
	KeyCreate       = "create"
	KeyUpdate       = "update"
	KeyReplace      = "replace"
	KeyPatch        = "patch"
	KeyDelete       = "delete"
	KeyDeleteAll    = "delete_all"
	KeyAction       = "action"
	KeyFind         = "find"
	KeyDefault      = "default"
	KeyDefaults     = "defaults"
	KeyDetails      = "details"
	KeyDownload     = "download"
	KeyUpload       = "upload"
)

// HTTP methods in the order operations of a path are visited.
// Methods are lower case, matching the OpenAPI path item keys.
var MethodOrder = []string{"head", "get", "put", "post", "delete", "options", "patch"}

// HTTP Content Types
const (
	ContentTypeJSON = "application/json"
)

// Vendor extension carrying OpenStack specific hints on schemas
const (
	ExtensionOpenStack     = "x-openstack"
	ExtensionDiscriminator = "discriminator"
	ExtensionActionName    = "action-name"
	DiscriminatorAction    = "action"
)
