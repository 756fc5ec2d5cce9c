// Package docfile persists documents to disk.
//
// Two formats are supported. Plain text stores one segment per line and
// drops all formatting. The rich format is YAML and keeps every
// character's format as runs of identically styled text:
//
//	version: 1
//	id: 3f2b0c0e-4c53-4b5e-9a57-0d3f6f1f6a42
//	flow: vertical
//	segments:
//	  - runs:
//	      - text: 縦書き
//	        style: {family: Go, size: 15, color: "#000000"}
//	      - text: bold
//	        style: {family: Go, size: 15, bold: true, color: "#000000"}
//
// The format is chosen from the file extension: ".vtx", ".yaml" and ".yml"
// select the rich format, anything else is plain text.
package docfile
