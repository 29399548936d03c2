// Package schemas embeds the JSON Schemas for files openkit reads and writes.
package schemas

import _ "embed"

//go:embed report.schema.json
var ReportSchemaJSON string

//go:embed snapshot.schema.json
var SnapshotSchemaJSON string

//go:embed config.schema.json
var ConfigSchemaJSON string
