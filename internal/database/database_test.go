package database

import (
	"testing"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDocumentValidationFailure(t *testing.T) {
	for _, tc := range []struct {
		name     string
		err      error
		expected bool
	}{
		{"write", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121}}}, true},
		{"write-mixed", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}, {Code: 121}}}, true},
		{"write-other", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}, false},
		{"command", mongo.CommandError{Code: 121}, true},
		{"command-other", mongo.CommandError{Code: 2}, false},
		{"wrapped", errors.Wrap(mongo.CommandError{Code: 121}, "Failed to update student"), true},
		{"plain", errors.New("server selection error"), false},
		{"nil", nil, false},
	} {
		if got := isDocumentValidationFailure(tc.err); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}
