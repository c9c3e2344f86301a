// Package schemas embeds the JSON Schemas for request payloads.
package schemas

import _ "embed"

// ProfileSubmission is the schema for an editor save of a whole profile tree.
//
//go:embed profile_submission.schema.json
var ProfileSubmission string
