package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dentalflow/clinic-system/internal/core/domain"
)

const (
	collectionEntities = "entities"
	collectionIndexes  = "entity_indexes"
)

// Store is the MongoDB-backed EntityStore. Documents live in the entities
// collection keyed by "<kind>/<id>" with the JSON body stored verbatim; the
// per-kind id index is one document per kind in entity_indexes, with
// $addToSet/$pull keeping the ordered id list in step.
//
// The document write and the index write are two separate Mongo operations.
// A crash between them can desynchronise document set and index; readers
// treat an indexed id with no document as a skippable integrity fault.
type Store struct {
	entities *mongo.Collection
	indexes  *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		entities: db.Collection(collectionEntities),
		indexes:  db.Collection(collectionIndexes),
	}
}

type entityDoc struct {
	Key  string `bson:"_id"`
	Kind string `bson:"kind"`
	Data string `bson:"data"`
}

type indexDoc struct {
	Kind string   `bson:"_id"`
	IDs  []string `bson:"ids"`
}

func storageKey(kind, id string) string { return kind + "/" + id }

func (s *Store) Get(ctx context.Context, kind, id string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc entityDoc
	err := s.entities.FindOne(ctx, bson.M{"_id": storageKey(kind, id)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", kind, id, err)
	}
	return json.RawMessage(doc.Data), nil
}

func (s *Store) Put(ctx context.Context, kind, id string, doc json.RawMessage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.entities.ReplaceOne(ctx,
		bson.M{"_id": storageKey(kind, id)},
		entityDoc{Key: storageKey(kind, id), Kind: kind, Data: string(doc)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", kind, id, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, kind, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.entities.DeleteOne(ctx, bson.M{"_id": storageKey(kind, id)})
	if err != nil {
		return false, fmt.Errorf("delete %s/%s: %w", kind, id, err)
	}
	return res.DeletedCount > 0, nil
}

func (s *Store) ListIDs(ctx context.Context, kind string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc indexDoc
	err := s.indexes.FindOne(ctx, bson.M{"_id": kind}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list ids %s: %w", kind, err)
	}
	return doc.IDs, nil
}

func (s *Store) AddToIndex(ctx context.Context, kind, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.indexes.UpdateOne(ctx,
		bson.M{"_id": kind},
		bson.M{"$addToSet": bson.M{"ids": id}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("index add %s/%s: %w", kind, id, err)
	}
	return nil
}

func (s *Store) RemoveFromIndex(ctx context.Context, kind, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.indexes.UpdateOne(ctx,
		bson.M{"_id": kind},
		bson.M{"$pull": bson.M{"ids": id}},
	)
	if err != nil {
		return fmt.Errorf("index remove %s/%s: %w", kind, id, err)
	}
	return nil
}
