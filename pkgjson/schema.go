// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package pkgjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/socketsecurity/socketlib/validation/npmname"
)

// manifestSchema covers the fields Socket tooling relies on. It deliberately
// allows additional properties; package.json is an open format.
const manifestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {
			"type": "string",
			"minLength": 1,
			"maxLength": 214
		},
		"version": {"type": "string"},
		"description": {"type": "string"},
		"private": {"type": "boolean"},
		"bin": {
			"oneOf": [
				{"type": "string"},
				{"type": "object", "additionalProperties": {"type": "string"}}
			]
		},
		"scripts": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		},
		"dependencies": {"$ref": "#/definitions/dependencyMap"},
		"devDependencies": {"$ref": "#/definitions/dependencyMap"},
		"peerDependencies": {"$ref": "#/definitions/dependencyMap"},
		"optionalDependencies": {"$ref": "#/definitions/dependencyMap"}
	},
	"definitions": {
		"dependencyMap": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(manifestSchema)

// Validate checks a raw package.json document against the manifest schema.
// It returns nil for a valid document, or an error listing every violation.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate package.json: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return errors.New("invalid package.json: " + strings.Join(msgs, "; "))
	}

	// The schema only checks shape; the name also has to satisfy registry
	// naming rules.
	var doc struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Name != nil {
		if err := npmname.ValidateName(*doc.Name); err != nil {
			return fmt.Errorf("invalid package.json: %w", err)
		}
	}
	return nil
}
