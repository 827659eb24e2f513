package core

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/bndr/gotabulate"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// ToYAML renders the document. Struct fields keep declaration order,
// map keys are sorted and zero values are omitted, so identical input always
// produces identical bytes.
func (m *Metadata) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("flush metadata: %w", err)
	}
	return buf.Bytes(), nil
}

// MetadataFromYAML parses a document previously produced by ToYAML.
func MetadataFromYAML(data []byte) (*Metadata, error) {
	md := NewMetadata()
	if err := yaml.Unmarshal(data, md); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if md.Resources == nil {
		md.Resources = make(map[string]*ResourceModel)
	}
	return md, nil
}

// Fingerprint returns a hex sha256 digest of the document. The digest only
// depends on the content, never on map iteration order.
func (m *Metadata) Fingerprint() (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetOmitEmpty(true)
	enc.SetCustomStructTag("yaml")
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encode metadata fingerprint: %w", err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// EncodeMsgpack writes resources in ResourceKeys order. msgpack only sorts
// the keys of a few builtin map types, so nested maps are walked explicitly.
func (m *Metadata) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(1); err != nil {
		return err
	}
	if err := enc.EncodeString("resources"); err != nil {
		return err
	}
	keys := m.ResourceKeys()
	if err := enc.EncodeMapLen(len(keys)); err != nil {
		return err
	}
	for _, key := range keys {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := m.Resources[key].encodeMsgpack(enc); err != nil {
			return err
		}
	}
	return nil
}

func (r *ResourceModel) encodeMsgpack(enc *msgpack.Encoder) error {
	if r == nil {
		return enc.EncodeNil()
	}
	if err := encodeStrings(enc, "api_version", r.APIVersion, "spec_file", r.SpecFile); err != nil {
		return err
	}
	if err := enc.EncodeString("operations"); err != nil {
		return err
	}
	keys := r.OperationKeys()
	if err := enc.EncodeMapLen(len(keys)); err != nil {
		return err
	}
	for _, key := range keys {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := r.Operations[key].encodeMsgpack(enc); err != nil {
			return err
		}
	}
	return nil
}

func (o *OperationModel) encodeMsgpack(enc *msgpack.Encoder) error {
	if o == nil {
		return enc.EncodeNil()
	}
	if err := encodeStrings(enc, "operation_id", o.OperationID, "operation_type", o.OperationType); err != nil {
		return err
	}
	if err := enc.EncodeString("targets"); err != nil {
		return err
	}
	names := make([]string, 0, len(o.Targets))
	for name := range o.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	if err := enc.EncodeMapLen(len(names)); err != nil {
		return err
	}
	for _, name := range names {
		if err := enc.EncodeString(name); err != nil {
			return err
		}
		// Target params are a flat struct, encoded in field order.
		if err := enc.Encode(o.Targets[name]); err != nil {
			return err
		}
	}
	return nil
}

// encodeStrings opens a map holding the given non-empty string fields plus
// one trailing entry written by the caller.
func encodeStrings(enc *msgpack.Encoder, fields ...string) error {
	n := 1
	for i := 1; i < len(fields); i += 2 {
		if fields[i] != "" {
			n++
		}
	}
	if err := enc.EncodeMapLen(n); err != nil {
		return err
	}
	for i := 0; i < len(fields); i += 2 {
		if fields[i+1] == "" {
			continue
		}
		if err := enc.EncodeString(fields[i]); err != nil {
			return err
		}
		if err := enc.EncodeString(fields[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// PrettyTable renders one row per operation: resource, key, type, SDK
// module and CLI command. cliTarget and sdkTarget select the targets shown.
func (m *Metadata) PrettyTable(sdkTarget, cliTarget string) string {
	headers := []string{"resource", "operation", "type", "sdk module", "cli command"}
	var rows [][]any
	for _, resKey := range m.ResourceKeys() {
		res := m.Resources[resKey]
		for _, opKey := range res.OperationKeys() {
			op := res.Operations[opKey]
			var sdkModule, command string
			if sdk := op.Target(sdkTarget); sdk != nil {
				sdkModule = sdk.ModuleName
			}
			if cli := op.Target(cliTarget); cli != nil {
				command = cli.CLIFullCommand
			}
			rows = append(rows, []any{resKey, opKey, op.OperationType, sdkModule, command})
		}
	}
	if len(rows) == 0 {
		return "<>"
	}
	t := gotabulate.Create(rows)
	t.SetHeaders(headers)
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)
	return t.Render("grid")
}

// CountOperations returns the total number of operations in the document.
func (m *Metadata) CountOperations() int {
	n := 0
	for _, res := range m.Resources {
		n += len(res.Operations)
	}
	return n
}
