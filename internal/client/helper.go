package client

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/inquest/threatkb-go/internal/api"
)

// Higher-level operations composed from the raw CRUD methods.

// GetRule fetches a single yara rule as a parsed object.
func (c *Client) GetRule(id int64) (map[string]any, error) {
	raw, err := c.Get("yara_rules", strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	var rule map[string]any
	if err := json.Unmarshal(raw, &rule); err != nil {
		return nil, fmt.Errorf("parsing rule %d: %w", id, err)
	}
	return rule, nil
}

// GetRuleIDByName searches yara rules by exact name and returns the matching
// ids in the order the server listed them. No matches yields an empty slice.
func (c *Client) GetRuleIDByName(name string) ([]int64, error) {
	results, err := c.search("yara_rules", map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(results.Data))
	if results.TotalCount > 0 {
		for _, item := range results.Data {
			ids = append(ids, item.ID)
		}
	}
	return ids, nil
}

// DeleteRule deletes a single yara rule, reporting whether the server
// acknowledged with 200.
func (c *Client) DeleteRule(id int64) (bool, error) {
	return c.Delete("yara_rules", strconv.FormatInt(id, 10))
}

// DeleteRuleBatch deletes several yara rules in one call.
func (c *Client) DeleteRuleBatch(ids []int64) ([]byte, error) {
	return c.Update("yara_rules/delete", "", map[string]any{"batch": ids})
}

// DeleteRuleByName resolves name to rule ids and batch-deletes them. When
// nothing matches it is a no-op and returns (nil, nil).
func (c *Client) DeleteRuleByName(name string) ([]byte, error) {
	ids, err := c.GetRuleIDByName(name)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return c.DeleteRuleBatch(ids)
}

// DiscardRule soft-deletes a rule by fetching it, setting its state to
// Discarded and writing it back.
func (c *Client) DiscardRule(id int64) ([]byte, error) {
	rule, err := c.GetRule(id)
	if err != nil {
		return nil, err
	}
	rule["state"] = "Discarded"
	return c.Update("yara_rules", strconv.FormatInt(id, 10), rule)
}

// DeleteC2DNS deletes a c2dns entry.
func (c *Client) DeleteC2DNS(id int64) (bool, error) {
	return c.Delete("c2dns", strconv.FormatInt(id, 10))
}

// DeleteC2IP deletes a c2ip entry.
func (c *Client) DeleteC2IP(id int64) (bool, error) {
	return c.Delete("c2ips", strconv.FormatInt(id, 10))
}

// GetC2IPID resolves an IP address to its c2ip entry id. Only the first match
// is returned; IPs should be unique server-side, but when they are not the
// choice follows whatever order the server responded in. The second return is
// false when nothing matched.
func (c *Client) GetC2IPID(ip string) (int64, bool, error) {
	results, err := c.search("c2ips", map[string]string{"ip": ip})
	if err != nil {
		return 0, false, err
	}
	if results.TotalCount > 0 && len(results.Data) > 0 {
		return results.Data[0].ID, true, nil
	}
	return 0, false, nil
}

// GetC2IPComments fetches the comments attached to the c2ip entry for ip.
// When the IP is unknown a diagnostic is written and (nil, nil) is returned
// without issuing the comments request.
func (c *Client) GetC2IPComments(ip string) ([]api.Comment, error) {
	id, found, err := c.GetC2IPID(ip)
	if err != nil {
		return nil, err
	}
	if !found {
		fmt.Fprintln(c.diag, "IP not found")
		return nil, nil
	}

	params := url.Values{}
	params.Set("entity_type", strconv.Itoa(int(api.EntityC2IP)))
	params.Set("entity_id", strconv.FormatInt(id, 10))

	raw, err := c.Get("comments", "", params)
	if err != nil {
		return nil, err
	}

	var comments []api.Comment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, fmt.Errorf("parsing comments for %s: %w", ip, err)
	}
	return comments, nil
}

// SquelchCheck reports whether ip has been commented on within the last days
// days. Zero comments, including an unknown IP, means false.
func (c *Client) SquelchCheck(ip string, days int) (bool, error) {
	comments, err := c.GetC2IPComments(ip)
	if err != nil {
		return false, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	for _, comment := range comments {
		modified, err := time.Parse(api.DateModifiedLayout, comment.DateModified)
		if err != nil {
			return false, fmt.Errorf("parsing date_modified %q: %w", comment.DateModified, err)
		}
		if modified.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

// search issues a GET against endpoint with a ThreatKB "searches" filter and
// decodes the result envelope.
func (c *Client) search(endpoint string, filter map[string]string) (*api.SearchResult, error) {
	encoded, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("encoding search filter: %w", err)
	}

	params := url.Values{}
	params.Set("searches", string(encoded))

	raw, err := c.Get(endpoint, "", params)
	if err != nil {
		return nil, err
	}

	var results api.SearchResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("parsing %s search results: %w", endpoint, err)
	}
	return &results, nil
}
