package organizations

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// memoryDocuments is an in-memory DocumentStore used to exercise the
// tenant store and the lifecycle manager without a live database, it
// honours unique indexes the same way the real implementation does
type memoryDocuments struct {
	collections   map[string][]Document
	uniqueIndexes map[string]map[string]bool
}

func newMemoryDocuments() *memoryDocuments {
	return &memoryDocuments{
		collections:   map[string][]Document{},
		uniqueIndexes: map[string]map[string]bool{},
	}
}

func toDocument(input any) (Document, error) {
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func matches(doc Document, filter Document) bool {
	for key, expected := range filter {
		if doc[key] != expected {
			return false
		}
	}
	return true
}

func (m *memoryDocuments) FindOne(_ context.Context, collection string, filter Document, output any) error {
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, output)
		}
	}
	return ErrorDocumentNotFound
}

func (m *memoryDocuments) InsertOne(_ context.Context, collection string, document any) error {
	doc, err := toDocument(document)
	if err != nil {
		return err
	}
	for key := range m.uniqueIndexes[collection] {
		value, ok := doc[key]
		if !ok {
			continue
		}
		for _, existing := range m.collections[collection] {
			if existing[key] == value {
				return ErrorDuplicateEntry
			}
		}
	}
	m.collections[collection] = append(m.collections[collection], doc)
	return nil
}

func (m *memoryDocuments) UpdateOne(_ context.Context, collection string, filter Document, update Document) error {
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			updates, err := toDocument(update)
			if err != nil {
				return err
			}
			for key, value := range updates {
				doc[key] = value
			}
			return nil
		}
	}
	return ErrorDocumentNotFound
}

func (m *memoryDocuments) DeleteOne(_ context.Context, collection string, filter Document) error {
	docs := m.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memoryDocuments) Drop(_ context.Context, collection string) error {
	delete(m.collections, collection)
	delete(m.uniqueIndexes, collection)
	return nil
}

func (m *memoryDocuments) ListAll(_ context.Context, collection string) ([]Document, error) {
	output := []Document{}
	output = append(output, m.collections[collection]...)
	return output, nil
}

func (m *memoryDocuments) Exists(_ context.Context, collection string) (bool, error) {
	_, ok := m.collections[collection]
	return ok, nil
}

func (m *memoryDocuments) EnsureIndex(_ context.Context, collection string, key string, isUnique bool) error {
	if m.uniqueIndexes[collection] == nil {
		m.uniqueIndexes[collection] = map[string]bool{}
	}
	if isUnique {
		m.uniqueIndexes[collection][key] = true
	}
	if _, ok := m.collections[collection]; !ok {
		m.collections[collection] = []Document{}
	}
	return nil
}

func newTestStore(t *testing.T) (*TenantStore, *memoryDocuments) {
	t.Helper()
	documents := newMemoryDocuments()
	store := NewTenantStore(documents)
	if err := store.Provision(context.Background()); err != nil {
		t.Fatalf("failed to provision store: %s", err)
	}
	return store, documents
}

func TestTenantStore_uniqueIndexesRejectDuplicates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	org := Organization{
		OrganizationId:   "org-a",
		OrganizationName: "acme_corp",
		PartitionKey:     "org_acme_corp",
		AdminId:          "admin-a",
	}
	if err := store.InsertOrg(ctx, org); err != nil {
		t.Fatalf("failed to insert org: %s", err)
	}
	org.OrganizationId = "org-b"
	if err := store.InsertOrg(ctx, org); err == nil {
		t.Errorf("expected duplicate name insert to fail")
	}
}

func TestTenantStore_copyPartitionPreservesRecords(t *testing.T) {
	store, documents := newTestStore(t)
	ctx := context.Background()

	if err := store.ProvisionPartition(ctx, "org_source", "org-a", "a tenant", time.Now()); err != nil {
		t.Fatalf("failed to provision partition: %s", err)
	}
	for i := 0; i < 3; i++ {
		if err := documents.InsertOne(ctx, "org_source", Document{"record": fmt.Sprintf("value-%d", i)}); err != nil {
			t.Fatalf("failed to seed partition: %s", err)
		}
	}

	copied, err := store.CopyPartition(ctx, "org_source", "org_target")
	if err != nil {
		t.Fatalf("failed to copy partition: %s", err)
	}
	if copied != 4 {
		t.Errorf("expected 4 records copied, got %d", copied)
	}

	source, _ := store.PartitionRecords(ctx, "org_source")
	target, _ := store.PartitionRecords(ctx, "org_target")
	if len(source) != len(target) {
		t.Fatalf("expected target to hold %d records, got %d", len(source), len(target))
	}
	for i := range source {
		if fmt.Sprint(source[i]) != fmt.Sprint(target[i]) {
			t.Errorf("expected record %d to be copied verbatim, got %v vs %v", i, source[i], target[i])
		}
	}
}
