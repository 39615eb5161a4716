package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMissingFields(t *testing.T) {
	fields := &StudentFields{}
	expected := []string{FieldName, FieldGroup, FieldPhoto, FieldMark, FieldIsDonePr}
	if diff := cmp.Diff(expected, fields.Missing()); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}

	// Zero values are present values.
	fields = &StudentFields{
		Name:     ptr(""),
		Group:    ptr(""),
		Photo:    ptr(""),
		Mark:     ptr(0),
		IsDonePr: ptr(false),
	}
	if missing := fields.Missing(); len(missing) != 0 {
		t.Errorf("Unexpected missing fields: %v", missing)
	}
}

func TestNewStudent(t *testing.T) {
	now := time.Date(2023, 11, 16, 14, 12, 13, 241000000, time.UTC)
	fields := &StudentFields{
		Name:     ptr("Ushakov RostiSlave"),
		Group:    ptr("RPZ 20 1/9"),
		Photo:    ptr("https://photourl.com"),
		Mark:     ptr(5),
		IsDonePr: ptr(true),
	}

	student := NewStudent(fields, now)
	if student.ID.IsZero() {
		t.Fatal("Expected assigned id")
	}

	expected := &Student{
		ID:        student.ID,
		Name:      "Ushakov RostiSlave",
		Group:     "RPZ 20 1/9",
		Photo:     "https://photourl.com",
		Mark:      5,
		IsDonePr:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if diff := cmp.Diff(expected, student); diff != "" {
		t.Errorf("Student mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchApply(t *testing.T) {
	student := &Student{Name: "Anna", Group: "A", Photo: "p", Mark: 3, IsDonePr: true}
	patch := &StudentPatch{Mark: ptr(5), IsDonePr: ptr(false)}

	patch.Apply(student)
	expected := &Student{Name: "Anna", Group: "A", Photo: "p", Mark: 5, IsDonePr: false}
	if diff := cmp.Diff(expected, student); diff != "" {
		t.Errorf("Student mismatch (-want +got):\n%s", diff)
	}

	values := map[string]interface{}{FieldMark: 5, FieldIsDonePr: false}
	if diff := cmp.Diff(values, patch.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}
