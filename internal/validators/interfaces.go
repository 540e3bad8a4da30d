// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// A human is valid when name, age and sex are all present and name and sex
// are not empty; login credentials need both a username and a password. Failures are reported as
// a [*ValidationError] that names every offending field by its JSON name, so
// the HTTP layer can render them as a 422 detail list.
package validators

import "context"

// Validator checks a payload and reports every invalid field at once.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
