package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID        = "_id"
	FieldName      = "name"
	FieldGroup     = "group"
	FieldPhoto     = "photo"
	FieldMark      = "mark"
	FieldIsDonePr  = "isDonePr"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldRevision  = "__v"
)

type Student struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Group     string             `json:"group" bson:"group"`
	Photo     string             `json:"photo" bson:"photo"`
	Mark      int                `json:"mark" bson:"mark"`
	IsDonePr  bool               `json:"isDonePr" bson:"isDonePr"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
	Revision  int                `json:"__v" bson:"__v"`
}

// StudentFields is what a caller supplies on create. Pointers tell a missing
// field apart from a zero value.
type StudentFields struct {
	Name     *string `json:"name"`
	Group    *string `json:"group"`
	Photo    *string `json:"photo"`
	Mark     *int    `json:"mark"`
	IsDonePr *bool   `json:"isDonePr"`
}

// Missing lists the paths of required fields that were not supplied.
func (f *StudentFields) Missing() []string {
	missing := make([]string, 0)
	if f.Name == nil {
		missing = append(missing, FieldName)
	}
	if f.Group == nil {
		missing = append(missing, FieldGroup)
	}
	if f.Photo == nil {
		missing = append(missing, FieldPhoto)
	}
	if f.Mark == nil {
		missing = append(missing, FieldMark)
	}
	if f.IsDonePr == nil {
		missing = append(missing, FieldIsDonePr)
	}
	return missing
}

// NewStudent builds a record with fresh id and timestamps. Fields must be complete.
func NewStudent(f *StudentFields, now time.Time) *Student {
	return &Student{
		ID:        primitive.NewObjectID(),
		Name:      *f.Name,
		Group:     *f.Group,
		Photo:     *f.Photo,
		Mark:      *f.Mark,
		IsDonePr:  *f.IsDonePr,
		CreatedAt: now,
		UpdatedAt: now,
		Revision:  0,
	}
}

// StudentPatch is a partial update; nil fields are left untouched.
type StudentPatch struct {
	Name     *string `json:"name,omitempty"`
	Group    *string `json:"group,omitempty"`
	Photo    *string `json:"photo,omitempty"`
	Mark     *int    `json:"mark,omitempty"`
	IsDonePr *bool   `json:"isDonePr,omitempty"`
}

// Values returns the present fields keyed by their stored names.
func (p *StudentPatch) Values() map[string]interface{} {
	values := make(map[string]interface{})
	if p.Name != nil {
		values[FieldName] = *p.Name
	}
	if p.Group != nil {
		values[FieldGroup] = *p.Group
	}
	if p.Photo != nil {
		values[FieldPhoto] = *p.Photo
	}
	if p.Mark != nil {
		values[FieldMark] = *p.Mark
	}
	if p.IsDonePr != nil {
		values[FieldIsDonePr] = *p.IsDonePr
	}
	return values
}

func (p *StudentPatch) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Group != nil {
		s.Group = *p.Group
	}
	if p.Photo != nil {
		s.Photo = *p.Photo
	}
	if p.Mark != nil {
		s.Mark = *p.Mark
	}
	if p.IsDonePr != nil {
		s.IsDonePr = *p.IsDonePr
	}
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Now returns the current time at the precision the store keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
