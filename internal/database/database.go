package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	lf "github.com/rpzteam/students/internal/logfield"
	"github.com/rpzteam/students/internal/models"
)

// Mongo reports schema validation failures with this code.
const codeDocumentValidationFailure = 121

type Options struct {
	URI            string
	Name           string
	Collection     string
	ConnectTimeout time.Duration
	ConnectRetries uint64
}

type DataBase struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *zap.Logger
}

func OpenDataBase(ctx context.Context, logger *zap.Logger, opts Options) (*DataBase, error) {
	logger = logger.Named("mongo")

	var client *mongo.Client
	connect := func() error {
		connectCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()

		c, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI))
		if err != nil {
			return errors.Wrap(err, "Failed to create mongo client")
		}
		if err := c.Ping(connectCtx, nil); err != nil {
			_ = c.Disconnect(context.Background())
			return errors.Wrap(err, "Failed to ping mongo")
		}
		client = c
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), opts.ConnectRetries),
		ctx,
	)
	err := backoff.RetryNotify(connect, policy, func(err error, next time.Duration) {
		logger.Warn("Mongo is not reachable, retrying", zap.Error(err), zap.Duration("next", next))
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Connected to mongo", lf.DataBase(opts.Name), zap.String("collection", opts.Collection))
	return NewDataBase(client, client.Database(opts.Name).Collection(opts.Collection), logger), nil
}

func NewDataBase(client *mongo.Client, collection *mongo.Collection, logger *zap.Logger) *DataBase {
	return &DataBase{client: client, collection: collection, logger: logger}
}

func (db *DataBase) EnsureIndexes(ctx context.Context) error {
	_, err := db.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: models.FieldName, Value: 1}},
	})
	return errors.Wrap(err, "Failed to create name index")
}

func (db *DataBase) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *DataBase) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *DataBase) ListStudents(ctx context.Context, namePrefix string) ([]models.Student, error) {
	cursor, err := db.collection.Find(ctx, namePrefixDocument(namePrefix))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to find students")
	}
	defer cursor.Close(ctx)

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, errors.Wrap(err, "Failed to decode students")
	}
	return students, nil
}

func (db *DataBase) CreateStudent(ctx context.Context, fields *models.StudentFields) (*models.Student, error) {
	if err := missingFieldsError(fields.Missing()); err != nil {
		return nil, err
	}

	student := models.NewStudent(fields, models.Now())
	if _, err := db.collection.InsertOne(ctx, student); err != nil {
		if isDocumentValidationFailure(err) {
			return nil, &ValidationError{nested: err}
		}
		return nil, errors.Wrap(err, "Failed to insert student")
	}
	return student, nil
}

func (db *DataBase) DeleteStudent(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := db.collection.DeleteOne(ctx, bson.M{models.FieldID: id})
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return &models.DeleteResult{Acknowledged: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to delete student")
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// UpdateStudent runs a pipeline update so updatedAt strictly advances even
// when two updates land in the same millisecond.
func (db *DataBase) UpdateStudent(ctx context.Context, criteria *Criteria, patch *models.StudentPatch) (*models.Student, error) {
	set := bson.M{}
	for key, value := range patch.Values() {
		set[key] = bson.M{"$literal": value}
	}
	set[models.FieldUpdatedAt] = bson.M{"$max": bson.A{
		models.Now(),
		bson.M{"$add": bson.A{"$" + models.FieldUpdatedAt, 1}},
	}}
	set[models.FieldRevision] = bson.M{"$add": bson.A{
		bson.M{"$ifNull": bson.A{"$" + models.FieldRevision, 0}},
		1,
	}}
	update := mongo.Pipeline{{{Key: "$set", Value: set}}}

	var student models.Student
	err := db.collection.FindOneAndUpdate(
		ctx,
		criteria.Document(),
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if isDocumentValidationFailure(err) {
			return nil, &ValidationError{nested: err}
		}
		return nil, errors.Wrap(err, "Failed to update student")
	}
	return &student, nil
}

func isDocumentValidationFailure(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == codeDocumentValidationFailure {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return ce.Code == codeDocumentValidationFailure
	}
	return false
}
