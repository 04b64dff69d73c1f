// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import "errors"

// ErrExportInFlight is returned when an export is requested while
// another is still running. Callers retry after the current one
// finishes; exports are never queued.
var ErrExportInFlight = errors.New("export already in progress")

// ExportError wraps any failure during an export with the operation
// that produced it ("image", "pages", or "document").
type ExportError struct {
	Op  string
	Err error
}

func (e *ExportError) Error() string {
	return "export " + e.Op + ": " + e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
