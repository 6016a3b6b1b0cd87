// Package server implements the MCP (Model Context Protocol) server for
// cross-stitch pattern generation.
//
// This package provides a JSON-RPC 2.0 server that exposes the pattern
// pipeline and the floss catalog through the MCP protocol, so that an MCP
// client can turn photos into printable schemes and answer questions about
// thread colors.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Source Photos:
//   - image_load: Load a photo and report its size and stitch grid
//   - image_sample_floss: Closest floss for the photo area under one stitch
//   - image_unload: Drop cached photos so edited files are read again
//
// Patterns:
//   - pattern_create: Build and save a scheme, return the floss report.
//     A named region or an explicit crop rectangle limits it to part of the
//     photo.
//
// Flosses:
//   - floss_match: Closest floss for hex colors
//   - floss_lookup: Floss details by number
//   - floss_catalog: List or search the catalog
//
// # Image Caching
//
// Photos are cached by path, so a client can inspect a photo and then create
// several patterns from it without decoding it again. Edits to a file on disk
// are not noticed until image_unload drops the cached copy.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or the standard JSON-RPC codes
//     -32700 (unparsable line), -32601 (unknown method) and -32602 (bad params)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	catalog, err := floss.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(catalog)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
