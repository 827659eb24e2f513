/*
Package openstack_codegen generates the operation metadata consumed by the OpenStack SDK and CLI code generators.

It reads the OpenAPI document of one OpenStack service, groups its paths into resources
(servers, volumes, server/volume_attachment, ...), classifies every HTTP operation into a logical
operation key (list, show, create, delete, or a named action), and writes the result as
<service_type>_metadata.yaml with per-target module names and CLI commands.

The main entry point is MetadataGenerator, which is initialized using a GeneratorConfig.
The classification itself lives in the metadata package and can be used on an already loaded
document through metadata.NewBuilder.
*/
package openstack_codegen
