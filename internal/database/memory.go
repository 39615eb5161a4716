package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slices"

	"github.com/rpzteam/students/internal/models"
)

// MemoryDataBase keeps students in process, in insertion order. It serves the
// same contract as DataBase and loses everything on restart.
type MemoryDataBase struct {
	mu       sync.RWMutex
	students []*models.Student
}

func NewMemoryDataBase() *MemoryDataBase {
	return &MemoryDataBase{students: make([]*models.Student, 0)}
}

func (db *MemoryDataBase) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (db *MemoryDataBase) Close(ctx context.Context) error {
	return nil
}

func (db *MemoryDataBase) ListStudents(ctx context.Context, namePrefix string) ([]models.Student, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	students := make([]models.Student, 0, len(db.students))
	for _, s := range db.students {
		if len(namePrefix) == 0 || hasNamePrefix(s, namePrefix) {
			students = append(students, *s)
		}
	}
	return students, nil
}

func (db *MemoryDataBase) CreateStudent(ctx context.Context, fields *models.StudentFields) (*models.Student, error) {
	if err := missingFieldsError(fields.Missing()); err != nil {
		return nil, err
	}

	student := models.NewStudent(fields, models.Now())

	db.mu.Lock()
	defer db.mu.Unlock()
	db.students = append(db.students, student)

	res := *student
	return &res, nil
}

func (db *MemoryDataBase) DeleteStudent(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	pos := slices.IndexFunc(db.students, func(s *models.Student) bool {
		return s.ID == id
	})
	if pos == -1 {
		return &models.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
	}
	db.students = slices.Delete(db.students, pos, pos+1)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (db *MemoryDataBase) UpdateStudent(ctx context.Context, criteria *Criteria, patch *models.StudentPatch) (*models.Student, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	pos := slices.IndexFunc(db.students, criteria.Match)
	if pos == -1 {
		return nil, ErrNotFound
	}

	student := db.students[pos]
	patch.Apply(student)

	now := models.Now()
	if !now.After(student.UpdatedAt) {
		now = student.UpdatedAt.Add(time.Millisecond)
	}
	student.UpdatedAt = now
	student.Revision++

	res := *student
	return &res, nil
}
