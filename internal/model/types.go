// Package model defines shared data structures.
package model

// Config is the resolved runtime configuration.
type Config struct {
	CatalogPath string
	Top         int
	Capitalize  bool
	LogFile     string
	LogLevel    string
}
