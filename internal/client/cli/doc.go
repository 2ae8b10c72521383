// Package cli provides the interactive Memento command-line client.
//
// It wires configuration, the journal store, the domain services and an
// interactive REPL. Typical flow: open the store, show today's status in
// the prompt and execute user commands until exit.
//
// Key features:
//   - Record a day: rating, emotions, per-emotion notes with #tags
//   - Calendar heat-map, rating series and distribution reports
//   - Tag drill-down across a month or a year
//   - Monthly goals and reminder settings
//   - Backup / restore, optionally sealed and uploaded to S3
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
