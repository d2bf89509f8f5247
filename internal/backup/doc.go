// Package backup persists pre-mutation manifest copies.
//
// A backup lives next to the manifest it protects, at the manifest path
// plus a suffix (".backup" by default). Backups follow first-run-wins:
// callers check Exists before Create, so the copy taken before the first
// mutation survives every later run.
package backup
