package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/openkit-devtools/openkit/internal/validation/schemas"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// reportSchema is the compiled JSON Schema for memory-health.json.
var reportSchema *jsonschema.Schema

// snapshotSchema is the compiled JSON Schema for session snapshots.
var snapshotSchema *jsonschema.Schema

// configSchema is the compiled JSON Schema for .openkit/memory/config.yaml.
var configSchema *jsonschema.Schema

func init() {
	reportSchema = mustCompileSchema(schemas.ReportSchemaJSON, "report.schema.json")
	snapshotSchema = mustCompileSchema(schemas.SnapshotSchemaJSON, "snapshot.schema.json")
	configSchema = mustCompileSchema(schemas.ConfigSchemaJSON, "config.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidateReportJSON validates a serialized doctor report.
func ValidateReportJSON(data []byte) []string {
	return validateJSONBytes(reportSchema, data)
}

// ValidateSnapshotJSON validates a serialized session snapshot.
func ValidateSnapshotJSON(data []byte) []string {
	return validateJSONBytes(snapshotSchema, data)
}

// ValidateConfigBytes validates raw config.yaml bytes.
func ValidateConfigBytes(data []byte) []string {
	return validateYAMLBytes(configSchema, data)
}

func validateJSONBytes(schema *jsonschema.Schema, data []byte) []string {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []string{fmt.Sprintf("JSON parse error: %v", err)}
	}
	return validateAgainstSchema(schema, doc)
}

func validateYAMLBytes(schema *jsonschema.Schema, data []byte) []string {
	var yamlDoc any
	if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}
	// An empty file decodes to nil and is a valid, empty config.
	if yamlDoc == nil {
		return nil
	}

	return validateAgainstSchema(schema, convertToJSONCompatible(yamlDoc))
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// convertToJSONCompatible rebuilds YAML-decoded maps and slices so nested
// values have the types the schema validator expects.
func convertToJSONCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[k] = convertToJSONCompatible(v2)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v2 := range val {
			result[i] = convertToJSONCompatible(v2)
		}
		return result
	default:
		return val
	}
}
