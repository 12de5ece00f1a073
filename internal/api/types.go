// Package api holds the wire types shared between the ThreatKB client and CLI.
package api

import "fmt"

// EntityType identifies the kind of a ThreatKB artifact. The numeric values
// are part of the wire contract (entity_type on comments and file uploads).
type EntityType int

const (
	EntityYaraRule EntityType = 1
	EntityC2DNS    EntityType = 2
	EntityC2IP     EntityType = 3
	EntityTask     EntityType = 4
)

// ParseEntityType maps a CLI artifact name onto its EntityType.
func ParseEntityType(s string) (EntityType, error) {
	switch s {
	case "yara_rule":
		return EntityYaraRule, nil
	case "c2dns":
		return EntityC2DNS, nil
	case "c2ip":
		return EntityC2IP, nil
	case "task":
		return EntityTask, nil
	}
	return 0, fmt.Errorf("unknown artifact type %q (want yara_rule, c2dns, c2ip or task)", s)
}

func (t EntityType) String() string {
	switch t {
	case EntityYaraRule:
		return "yara_rule"
	case EntityC2DNS:
		return "c2dns"
	case EntityC2IP:
		return "c2ip"
	case EntityTask:
		return "task"
	}
	return fmt.Sprintf("EntityType(%d)", int(t))
}

// SearchResult is the envelope the list endpoints return when a "searches"
// filter is supplied.
type SearchResult struct {
	TotalCount int          `json:"total_count"`
	Data       []SearchItem `json:"data"`
}

// SearchItem carries the subset of a search hit the client acts on.
type SearchItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Comment is a single annotation attached to an artifact.
type Comment struct {
	ID           int64  `json:"id"`
	Comment      string `json:"comment"`
	EntityType   int    `json:"entity_type"`
	EntityID     int64  `json:"entity_id"`
	User         string `json:"user,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
	DateModified string `json:"date_modified"`
}

// DateModifiedLayout is the timestamp format the API uses on comments.
const DateModifiedLayout = "2006-01-02T15:04:05"
