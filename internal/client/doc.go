// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It authenticates against the server when credentials are configured,
// dispatches a single command to the HTTP adapter and prints the result as
// JSON.
package client
