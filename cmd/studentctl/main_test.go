package main

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rpzteam/students/internal/models"
)

func TestParseFilter(t *testing.T) {
	filter, err := parseFilter([]string{"name=anna", "mark=5", "photo=https://x?a=b"})
	if err != nil {
		t.Fatal("Failed to parse filter:", err)
	}
	expected := url.Values{"name": {"anna"}, "mark": {"5"}, "photo": {"https://x?a=b"}}
	if diff := cmp.Diff(expected, filter); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"name", "=anna"} {
		if _, err := parseFilter([]string{bad}); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestRender(t *testing.T) {
	res := &models.DeleteResult{Acknowledged: true, DeletedCount: 1}

	buf := &bytes.Buffer{}
	if err := render(buf, formatYAML, res); err != nil {
		t.Fatal("Failed to render yaml:", err)
	}
	if diff := cmp.Diff("acknowledged: true\ndeletedCount: 1\n", buf.String()); diff != "" {
		t.Errorf("Yaml mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := render(buf, formatJSON, res); err != nil {
		t.Fatal("Failed to render json:", err)
	}
	if diff := cmp.Diff("{\n  \"acknowledged\": true,\n  \"deletedCount\": 1\n}\n", buf.String()); diff != "" {
		t.Errorf("Json mismatch (-want +got):\n%s", diff)
	}

	if err := render(buf, "xml", res); err == nil {
		t.Error("Expected error for unknown format")
	}
}
