// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, nodes, paths, metadata) and contracts
// (interfaces) only.
package domain
