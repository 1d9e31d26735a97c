// Package serializer handles reading and writing structured data in JSON,
// YAML, and table formats.
//
// The Writer serializes any value to a configured io.Writer. The table
// format flattens nested values into FIELD/VALUE rows for terminal output
// and is write-only. FromFile and FromBytes deserialize into typed values,
// picking the format from the file extension when not specified.
package serializer
