package database

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rpzteam/students/internal/models"
)

func TestParseCriteria(t *testing.T) {
	id := primitive.NewObjectID()
	values := url.Values{
		"_id":      {id.Hex()},
		"name":     {"Anna", "ignored"},
		"mark":     {"5"},
		"isDonePr": {"true"},
		"__v":      {"2"},
		"nickname": {"ann"},
	}

	c, err := ParseCriteria(values)
	if err != nil {
		t.Fatal("Failed to parse criteria:", err)
	}

	expected := bson.M{
		"_id":      id,
		"name":     "Anna",
		"mark":     5,
		"isDonePr": true,
		"__v":      2,
		"nickname": "ann",
	}
	if diff := cmp.Diff(expected, c.Document()); diff != "" {
		t.Errorf("Document mismatch (-want +got):\n%s", diff)
	}
	if !c.HasID() {
		t.Error("Expected id in criteria")
	}
}

func TestParseCriteriaErrors(t *testing.T) {
	for _, values := range []url.Values{
		{"_id": {"not-an-object-id"}},
		{"mark": {"five"}},
		{"__v": {"x"}},
		{"isDonePr": {"maybe"}},
		{"$where": {"sleep(5000) || true"}},
		{"$or": {"x"}},
		{"name.first": {"x"}},
	} {
		_, err := ParseCriteria(values)
		if !IsValidation(err) {
			t.Errorf("Expected validation error for %v, got %v", values, err)
		}
	}
}

func TestParseCriteriaKeepsOperatorsOut(t *testing.T) {
	c, err := ParseCriteria(url.Values{"$where": {"sleep(5000) || true"}, "name.first": {"x"}})
	if err == nil {
		t.Fatalf("Expected error, got filter %v", c.Document())
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 1 {
		t.Fatalf("Unexpected error: %v", err)
	}
	if verr.Fields[0].Path != "$where" {
		t.Errorf("Unexpected error path %q", verr.Fields[0].Path)
	}
}

func TestCriteriaMatch(t *testing.T) {
	student := &models.Student{ID: primitive.NewObjectID(), Name: "Anna", Group: "A", Mark: 5, IsDonePr: true}
	mark, otherMark, done := 5, 4, false

	if !ByID(student.ID).Match(student) {
		t.Error("Expected match by id")
	}
	if !(&Criteria{Mark: &mark}).Match(student) {
		t.Error("Expected match by mark")
	}
	if (&Criteria{Mark: &otherMark}).Match(student) {
		t.Error("Unexpected match by other mark")
	}
	if (&Criteria{IsDonePr: &done}).Match(student) {
		t.Error("Unexpected match by isDonePr")
	}
	if (&Criteria{Extra: map[string]string{"nickname": "ann"}}).Match(student) {
		t.Error("Unknown fields must not match")
	}
}

func TestNamePrefixDocument(t *testing.T) {
	if diff := cmp.Diff(bson.M{}, namePrefixDocument("")); diff != "" {
		t.Errorf("Empty prefix must select everything:\n%s", diff)
	}

	expected := bson.M{"name": primitive.Regex{Pattern: `^a\.\*`, Options: "i"}}
	if diff := cmp.Diff(expected, namePrefixDocument("a.*")); diff != "" {
		t.Errorf("Prefix document mismatch (-want +got):\n%s", diff)
	}
}

func TestHasNamePrefix(t *testing.T) {
	for _, tc := range []struct {
		name   string
		prefix string
		match  bool
	}{
		{"anna", "a", true},
		{"Anna", "a", true},
		{"anna", "A", true},
		{"Boris", "a", false},
		{"Ярослав", "я", true},
		{"a.b", "a.", true},
		{"ab", "a.", false},
	} {
		if got := hasNamePrefix(&models.Student{Name: tc.name}, tc.prefix); got != tc.match {
			t.Errorf("hasNamePrefix(%q, %q) = %v, expected %v", tc.name, tc.prefix, got, tc.match)
		}
	}
}
