package database

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rpzteam/students/internal/models"
)

// Criteria selects the record an update applies to. Known fields carry their
// schema types, anything else is matched as a literal string.
type Criteria struct {
	ID       *primitive.ObjectID
	Name     *string
	Group    *string
	Photo    *string
	Mark     *int
	IsDonePr *bool
	Revision *int
	Extra    map[string]string
}

func ByID(id primitive.ObjectID) *Criteria {
	return &Criteria{ID: &id}
}

// ParseCriteria casts query parameters to schema types. Only the first value
// of a repeated key is used.
func ParseCriteria(values url.Values) (*Criteria, error) {
	c := &Criteria{Extra: make(map[string]string)}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := values.Get(key)
		switch key {
		case models.FieldID:
			id, err := ParseID(value)
			if err != nil {
				return nil, err
			}
			c.ID = &id
		case models.FieldName:
			c.Name = &value
		case models.FieldGroup:
			c.Group = &value
		case models.FieldPhoto:
			c.Photo = &value
		case models.FieldMark:
			mark, err := strconv.Atoi(value)
			if err != nil {
				return nil, invalidFieldError(key, err)
			}
			c.Mark = &mark
		case models.FieldRevision:
			revision, err := strconv.Atoi(value)
			if err != nil {
				return nil, invalidFieldError(key, err)
			}
			c.Revision = &revision
		case models.FieldIsDonePr:
			done, err := strconv.ParseBool(value)
			if err != nil {
				return nil, invalidFieldError(key, err)
			}
			c.IsDonePr = &done
		default:
			if !isPlainKey(key) {
				return nil, invalidFieldError(key, errors.Errorf("unsupported filter key %q", key))
			}
			c.Extra[key] = value
		}
	}
	return c, nil
}

// isPlainKey rejects operators and dotted paths so extra keys stay literal
// top-level matches.
func isPlainKey(key string) bool {
	return len(key) > 0 && !strings.HasPrefix(key, "$") && !strings.Contains(key, ".")
}

func ParseID(value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, invalidFieldError(models.FieldID, err)
	}
	return id, nil
}

func (c *Criteria) HasID() bool {
	return c.ID != nil
}

func (c *Criteria) Document() bson.M {
	doc := bson.M{}
	if c.ID != nil {
		doc[models.FieldID] = *c.ID
	}
	if c.Name != nil {
		doc[models.FieldName] = *c.Name
	}
	if c.Group != nil {
		doc[models.FieldGroup] = *c.Group
	}
	if c.Photo != nil {
		doc[models.FieldPhoto] = *c.Photo
	}
	if c.Mark != nil {
		doc[models.FieldMark] = *c.Mark
	}
	if c.IsDonePr != nil {
		doc[models.FieldIsDonePr] = *c.IsDonePr
	}
	if c.Revision != nil {
		doc[models.FieldRevision] = *c.Revision
	}
	for key, value := range c.Extra {
		doc[key] = value
	}
	return doc
}

// Match reports whether s satisfies every key of c.
func (c *Criteria) Match(s *models.Student) bool {
	if len(c.Extra) > 0 {
		return false
	}
	if c.ID != nil && *c.ID != s.ID {
		return false
	}
	if c.Name != nil && *c.Name != s.Name {
		return false
	}
	if c.Group != nil && *c.Group != s.Group {
		return false
	}
	if c.Photo != nil && *c.Photo != s.Photo {
		return false
	}
	if c.Mark != nil && *c.Mark != s.Mark {
		return false
	}
	if c.IsDonePr != nil && *c.IsDonePr != s.IsDonePr {
		return false
	}
	if c.Revision != nil && *c.Revision != s.Revision {
		return false
	}
	return true
}

func namePrefixDocument(prefix string) bson.M {
	if len(prefix) == 0 {
		return bson.M{}
	}
	return bson.M{models.FieldName: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(prefix),
		Options: "i",
	}}
}

func hasNamePrefix(s *models.Student, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(prefix))
}
