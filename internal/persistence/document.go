package persistence

import (
	"context"
	"fmt"
	"tenantry/internal/organizations"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewDocumentDatabase wraps a database handle in the document-store
// contract that the tenant store consumes
func NewDocumentDatabase(db *mongo.Database) *DocumentDatabase {
	return &DocumentDatabase{db: db}
}

type DocumentDatabase struct {
	db *mongo.Database
}

func (d *DocumentDatabase) FindOne(ctx context.Context, collection string, filter organizations.Document, output any) error {
	if err := d.db.Collection(collection).FindOne(ctx, filter).Decode(output); err != nil {
		if err == mongo.ErrNoDocuments {
			return organizations.ErrorDocumentNotFound
		}
		return fmt.Errorf("failed to find document in collection[%s]: %w", collection, err)
	}
	return nil
}

func (d *DocumentDatabase) InsertOne(ctx context.Context, collection string, document any) error {
	if _, err := d.db.Collection(collection).InsertOne(ctx, document); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return organizations.ErrorDuplicateEntry
		}
		return fmt.Errorf("failed to insert document into collection[%s]: %w", collection, err)
	}
	return nil
}

func (d *DocumentDatabase) UpdateOne(ctx context.Context, collection string, filter organizations.Document, update organizations.Document) error {
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update document in collection[%s]: %w", collection, err)
	}
	if result.MatchedCount == 0 {
		return organizations.ErrorDocumentNotFound
	}
	return nil
}

func (d *DocumentDatabase) DeleteOne(ctx context.Context, collection string, filter organizations.Document) error {
	if _, err := d.db.Collection(collection).DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete document from collection[%s]: %w", collection, err)
	}
	return nil
}

func (d *DocumentDatabase) Drop(ctx context.Context, collection string) error {
	if err := d.db.Collection(collection).Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop collection[%s]: %w", collection, err)
	}
	return nil
}

func (d *DocumentDatabase) ListAll(ctx context.Context, collection string) ([]organizations.Document, error) {
	cursor, err := d.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collection[%s]: %w", collection, err)
	}
	defer cursor.Close(ctx)
	results := []organizations.Document{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode documents from collection[%s]: %w", collection, err)
	}
	return results, nil
}

func (d *DocumentDatabase) Exists(ctx context.Context, collection string) (bool, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.M{"name": collection})
	if err != nil {
		return false, fmt.Errorf("failed to list collections: %w", err)
	}
	return len(names) > 0, nil
}

func (d *DocumentDatabase) EnsureIndex(ctx context.Context, collection string, key string, isUnique bool) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: key, Value: 1}},
		Options: options.Index().SetUnique(isUnique),
	}
	if _, err := d.db.Collection(collection).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on collection[%s] key[%s]: %w", collection, key, err)
	}
	return nil
}
