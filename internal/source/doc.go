// Package source opens the input location for reading.
//
// A location is either a local file path or an s3://bucket/key URI. Inputs
// whose name ends in .gz or .zst are decompressed on the fly; everything else
// is returned as is. All failures wrap common.ErrInputUnavailable.
package source
