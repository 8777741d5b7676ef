// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidGzipBody is reported when a request declares a gzip
// Content-Encoding but its body cannot be decompressed.
var ErrInvalidGzipBody = errors.New("invalid gzip request body")
