// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators is the schema layer of the application: it turns
// untrusted input into typed records or a [ValidationError] that lists every
// offending field.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - SchemaValidator: Validator driven by `validate` struct tags.
//   - DecodeJSON: decodes a request body into a record, applies defaults and
//     validates it in one step.
//
// The package has no side effects and does not depend on transport or
// storage.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
