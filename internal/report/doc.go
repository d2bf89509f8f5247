// Package report renders run summaries for humans.
//
// Services fill the report structs in pkg/pbxsync; this package turns them
// into the text the CLI prints, including the optional unified diff of
// pending manifest changes.
package report
