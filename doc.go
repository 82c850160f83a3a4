// Package archtype identifies the archive or container format of a file.
//
// Two heuristics are used in a fixed order. [MatchExtension] looks at the file
// name and maps the full extension, e.g. "tar.gz", to a [Format]. Only if the
// extension is missing or unknown, [ScanSignature] reads the first
// [MaxHeaderLength] bytes of the file and compares them with the known magic
// bytes. [Identify] combines both after resolving the path with [ResolvePath].
//
// Nothing is extracted or validated. [UnpackCommand] describes the external
// command that would unpack an identified archive.
//
// Configuration is done using the [Config], which holds the logger, the
// telemetry hook and the home directory used to expand "~". [TelemetryData]
// is passed to the hook after every identification.
package archtype
