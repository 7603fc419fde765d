// pkg/api/stats_v1.go

// Package api defines the stable JSON payloads the tools emit.
// Versioned: additive changes only within V1.
package api

// StatsV1 is the end-of-run counter report of a transforming tool.
type StatsV1 struct {
	Tool      string `json:"tool"`
	Successes int    `json:"successes"`
	Failures  int    `json:"failures"`
}
