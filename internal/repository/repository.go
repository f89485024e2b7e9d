// Package repository implements document-store access for the service's
// resources. A generic base covers the shared CRUD capability set;
// resource repositories embed it and add their own lookups.
//
// Lookups by id or unique field report "no match" as a nil result, not an
// error. Turning an empty result into a domain error is the service
// layer's responsibility.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// InvalidIDError reports an operation that was handed a malformed document
// id. It records the failing field and value itself so the error pipeline
// never has to re-derive them.
type InvalidIDError struct {
	Field string
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid document id for %s: %q", e.Field, e.Value)
}

// InvalidID exposes the failing field and value to the error classifier.
func (e *InvalidIDError) InvalidID() (string, string) {
	return e.Field, e.Value
}

// Base provides the shared CRUD capability set over one collection,
// parameterized by the document type.
type Base[T any] struct {
	coll *mongo.Collection
	// projection applied to every read; used to keep secret fields out
	// of default results.
	projection bson.M
}

// NewBase creates a Base over coll. projection may be nil when every
// field is readable.
func NewBase[T any](coll *mongo.Collection, projection bson.M) *Base[T] {
	return &Base[T]{coll: coll, projection: projection}
}

// Collection returns the underlying collection for resource-specific queries.
func (r *Base[T]) Collection() *mongo.Collection {
	return r.coll
}

// Create inserts doc and returns the generated object id. Unique-index
// conflicts surface as the driver's duplicate-key error, untouched, for
// central classification.
func (r *Base[T]) Create(ctx context.Context, doc *T) (bson.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// FindAll returns every document in the collection.
func (r *Base[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, r.findOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID returns the document with the given hex id, or nil when no
// document matches.
func (r *Base[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc T
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}, r.findOneOptions()).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateByID applies set to the document with the given hex id and returns
// the updated document, or nil when no document matches.
func (r *Base[T]) UpdateByID(ctx context.Context, id string, set bson.M) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if r.projection != nil {
		opts.SetProjection(r.projection)
	}

	var doc T
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteByID removes the document with the given hex id and returns the
// removed document, or nil when no document matches.
func (r *Base[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndDelete()
	if r.projection != nil {
		opts.SetProjection(r.projection)
	}

	var doc T
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *Base[T]) findOptions() *options.FindOptionsBuilder {
	opts := options.Find()
	if r.projection != nil {
		opts.SetProjection(r.projection)
	}
	return opts
}

func (r *Base[T]) findOneOptions() *options.FindOneOptionsBuilder {
	opts := options.FindOne()
	if r.projection != nil {
		opts.SetProjection(r.projection)
	}
	return opts
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, &InvalidIDError{Field: "id", Value: id}
	}
	return oid, nil
}
