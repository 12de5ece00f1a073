package client

import (
	"testing"
)

func TestProjectObject(t *testing.T) {
	raw := []byte(`{"id":1,"name":"x","extra":"y"}`)

	out, err := Project(raw, []string{"id", "name"})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if string(out) != `{"id":1,"name":"x"}` {
		t.Errorf("Project = %s, want {\"id\":1,\"name\":\"x\"}", out)
	}
}

func TestProjectKeyOrderFollowsRequest(t *testing.T) {
	raw := []byte(`{"id":1,"name":"x"}`)

	out, err := Project(raw, []string{"name", "id"})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if string(out) != `{"name":"x","id":1}` {
		t.Errorf("Project = %s, want {\"name\":\"x\",\"id\":1}", out)
	}
}

func TestProjectArray(t *testing.T) {
	raw := []byte(`[{"id":1,"name":"x","extra":"y"},{"id":2,"name":"z","extra":"w"}]`)

	out, err := Project(raw, []string{"id", "name"})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	want := `[{"id":1,"name":"x"},{"id":2,"name":"z"}]`
	if string(out) != want {
		t.Errorf("Project = %s, want %s", out, want)
	}
}

func TestProjectMissingKey(t *testing.T) {
	if _, err := Project([]byte(`{"id":1}`), []string{"id", "name"}); err == nil {
		t.Error("Project with missing key succeeded, want error")
	}
	if _, err := Project([]byte(`[{"id":1,"name":"x"},{"id":2}]`), []string{"id", "name"}); err == nil {
		t.Error("Project with missing key in array element succeeded, want error")
	}
}

func TestProjectMalformedInput(t *testing.T) {
	if _, err := Project([]byte("not json"), []string{"id"}); err == nil {
		t.Error("Project on non-JSON input succeeded, want error")
	}
	if _, err := Project([]byte(`"scalar"`), []string{"id"}); err == nil {
		t.Error("Project on scalar input succeeded, want error")
	}
}

func TestFilterOutput(t *testing.T) {
	c := New(Options{FilterKeys: []string{"id", "name"}})

	out := c.FilterOutput([]byte(`{"id":1,"name":"x","extra":"y"}`))
	if string(out) != `{"id":1,"name":"x"}` {
		t.Errorf("FilterOutput = %s", out)
	}

	// Projection failures fall back to the original bytes.
	raw := []byte("not json")
	if out := c.FilterOutput(raw); string(out) != "not json" {
		t.Errorf("FilterOutput on malformed input = %s, want passthrough", out)
	}
	raw = []byte(`{"id":1}`)
	if out := c.FilterOutput(raw); string(out) != `{"id":1}` {
		t.Errorf("FilterOutput with missing key = %s, want passthrough", out)
	}
}

func TestFilterOutputNoKeys(t *testing.T) {
	c := New(Options{})

	raw := []byte(`{"id":1}`)
	if out := c.FilterOutput(raw); string(out) != `{"id":1}` {
		t.Errorf("FilterOutput without keys = %s, want passthrough", out)
	}
}
