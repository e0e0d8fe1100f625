package note

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"productName"`
	Body  string             `bson:"price"`
}

func (d mongoDocument) toNote() Note {
	return Note{
		ID:    d.ID.Hex(),
		Title: d.Title,
		Body:  d.Body,
	}
}

type MongoRepository struct {
	coll *mongo.Collection
}

var _ Repository = (*MongoRepository)(nil)

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(CollectionName)}
}

// List returns the notes in creation order. ObjectIDs start with their creation time.
func (r *MongoRepository) List(ctx context.Context) ([]Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find notes: %w", ErrQueryFailed, err)
	}

	var docs []mongoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode notes: %w", ErrQueryFailed, err)
	}

	notes := make([]Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.toNote())
	}
	return notes, nil
}

func (r *MongoRepository) Create(ctx context.Context, params CreateParams) (Note, error) {
	doc := mongoDocument{Title: params.Title, Body: params.Body}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return Note{}, fmt.Errorf("%w: insert note: %w", ErrQueryFailed, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return Note{}, fmt.Errorf("%w: unexpected inserted id type %T", ErrQueryFailed, res.InsertedID)
	}
	doc.ID = oid
	return doc.toNote(), nil
}

func (r *MongoRepository) Find(ctx context.Context, id string) (Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Note{}, ErrNotFound
	}

	var doc mongoDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Note{}, ErrNotFound
		}
		return Note{}, fmt.Errorf("%w: find note %s: %w", ErrQueryFailed, id, err)
	}
	return doc.toNote(), nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, params UpdateParams) (Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Note{}, ErrNotFound
	}

	set := bson.D{}
	if params.Title != nil {
		set = append(set, bson.E{Key: FieldTitle, Value: *params.Title})
	}
	if params.Body != nil {
		set = append(set, bson.E{Key: FieldBody, Value: *params.Body})
	}
	if len(set) == 0 {
		return r.Find(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Note{}, ErrNotFound
		}
		return Note{}, fmt.Errorf("%w: update note %s: %w", ErrQueryFailed, id, err)
	}
	return doc.toNote(), nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%w: delete note %s: %w", ErrQueryFailed, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
