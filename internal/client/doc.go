// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the SaaS backend.
//
// Each invocation runs one command against the server through the
// [adapter.ServerAdapter] and prints the JSON result to stdout.
package client
