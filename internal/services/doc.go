// Package services implements Memento's use cases on top of the
// repositories: saving journal days, editing monthly goals, reminder
// settings, and backup export and restore.
package services
