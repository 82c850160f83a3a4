// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archtype

import (
	"context"
	"encoding/json"
	"time"
)

// Method is the heuristic that identified a format.
type Method string

const (
	// MethodExtension means the format was derived from the file extension.
	MethodExtension Method = "extension"

	// MethodSignature means the format was derived from the file header.
	MethodSignature Method = "signature"
)

// TelemetryData holds all telemetry data of an identification.
type TelemetryData struct {
	// Path is the path as passed by the caller
	Path string `json:"path"`

	// ResolvedPath is the canonical path, empty if resolution failed
	ResolvedPath string `json:"resolved_path"`

	// Format is the identified format
	Format Format `json:"format"`

	// Method is the heuristic that identified the format, empty on failure
	Method Method `json:"method"`

	// HeaderSize is the number of bytes read from the file, zero if the
	// file was identified by extension
	HeaderSize int `json:"header_size"`

	// Duration is the time it took to identify the file
	Duration time.Duration `json:"duration"`

	// Error is the error returned to the caller
	Error error `json:"error"`
}

// String returns a string representation of [TelemetryData].
func (td TelemetryData) String() string {
	b, _ := json.Marshal(td)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (td TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if td.Error != nil {
		lastError = td.Error.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		Error string `json:"error"`
		*Alias
	}{
		Error: lastError,
		Alias: (*Alias)(&td),
	})
}

// TelemetryHook is a function type that performs operations on [TelemetryData]
// after an identification has finished which can be used to submit the
// [TelemetryData] to a telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// captureDuration sets the duration since start. It is meant to be deferred.
func captureDuration(td *TelemetryData, start time.Time) {
	td.Duration = time.Since(start)
}
