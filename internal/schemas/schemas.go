// Package schemas holds the embedded JSON Schemas for the input file
// formats.
package schemas

import _ "embed"

// EvaluationSchemaJSON is the schema for a per-evaluator data file: an
// array of papers, each carrying reviews with metric scores and an
// optional authorship guess.
//
//go:embed evaluation.schema.json
var EvaluationSchemaJSON string
