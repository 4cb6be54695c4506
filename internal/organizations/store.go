package organizations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is an opaque schema-less record, tenant partition contents
// are copied verbatim as these during a rename
type Document = bson.M

// DocumentStore is the seam between the tenant store and the storage
// engine, implementations exist over a live database and in-memory for
// tests
type DocumentStore interface {
	FindOne(ctx context.Context, collection string, filter Document, output any) error
	InsertOne(ctx context.Context, collection string, document any) error
	UpdateOne(ctx context.Context, collection string, filter Document, update Document) error
	DeleteOne(ctx context.Context, collection string, filter Document) error
	Drop(ctx context.Context, collection string) error
	ListAll(ctx context.Context, collection string) ([]Document, error)
	Exists(ctx context.Context, collection string) (bool, error)
	EnsureIndex(ctx context.Context, collection string, key string, isUnique bool) error
}

func NewTenantStore(documents DocumentStore) *TenantStore {
	return &TenantStore{documents: documents}
}

// TenantStore exposes typed operations over the master catalog
// (organizations, admins) and the per-tenant partitions
type TenantStore struct {
	documents DocumentStore
}

// Provision creates the unique indexes backing the catalog's
// uniqueness guarantees, it closes the check-then-act window between
// an existence check and the subsequent insert
func (s *TenantStore) Provision(ctx context.Context) error {
	if err := s.documents.EnsureIndex(ctx, CollectionOrganizations, "organization_name", true); err != nil {
		return fmt.Errorf("failed to index organizations on organization_name: %w", err)
	}
	if err := s.documents.EnsureIndex(ctx, CollectionAdmins, "email", true); err != nil {
		return fmt.Errorf("failed to index admins on email: %w", err)
	}
	return nil
}

func (s *TenantStore) GetOrgByName(ctx context.Context, normalizedName string) (*Organization, error) {
	var org Organization
	if err := s.documents.FindOne(ctx, CollectionOrganizations, Document{"organization_name": normalizedName}, &org); err != nil {
		if errors.Is(err, ErrorDocumentNotFound) {
			return nil, fmt.Errorf("org[%s]: %w", normalizedName, ErrorOrgNotFound)
		}
		return nil, fmt.Errorf("failed to load org[%s]: %w", normalizedName, err)
	}
	return &org, nil
}

func (s *TenantStore) GetOrgById(ctx context.Context, orgId string) (*Organization, error) {
	var org Organization
	if err := s.documents.FindOne(ctx, CollectionOrganizations, Document{"organization_id": orgId}, &org); err != nil {
		if errors.Is(err, ErrorDocumentNotFound) {
			return nil, fmt.Errorf("org[%s]: %w", orgId, ErrorOrgNotFound)
		}
		return nil, fmt.Errorf("failed to load org[%s]: %w", orgId, err)
	}
	return &org, nil
}

func (s *TenantStore) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	if err := s.documents.FindOne(ctx, CollectionAdmins, Document{"email": email}, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *TenantStore) GetAdminById(ctx context.Context, adminId string) (*Admin, error) {
	var admin Admin
	if err := s.documents.FindOne(ctx, CollectionAdmins, Document{"admin_id": adminId}, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *TenantStore) InsertOrg(ctx context.Context, org Organization) error {
	if err := s.documents.InsertOne(ctx, CollectionOrganizations, org); err != nil {
		if errors.Is(err, ErrorDuplicateEntry) {
			return fmt.Errorf("org[%s]: %w", org.OrganizationName, ErrorOrgExists)
		}
		return fmt.Errorf("failed to insert org[%s]: %w", org.OrganizationName, err)
	}
	return nil
}

func (s *TenantStore) InsertAdmin(ctx context.Context, admin Admin) error {
	if err := s.documents.InsertOne(ctx, CollectionAdmins, admin); err != nil {
		if errors.Is(err, ErrorDuplicateEntry) {
			return fmt.Errorf("admin[%s]: %w", admin.Email, ErrorEmailExists)
		}
		return fmt.Errorf("failed to insert admin[%s]: %w", admin.Email, err)
	}
	return nil
}

func (s *TenantStore) UpdateOrgName(ctx context.Context, orgId string, newName string, newPartitionKey string, updatedAt time.Time) error {
	if err := s.documents.UpdateOne(
		ctx,
		CollectionOrganizations,
		Document{"organization_id": orgId},
		Document{
			"organization_name": newName,
			"partition_key":     newPartitionKey,
			"updated_at":        updatedAt,
		},
	); err != nil {
		return fmt.Errorf("failed to update org[%s]: %w", orgId, err)
	}
	return nil
}

func (s *TenantStore) DeleteOrg(ctx context.Context, orgId string) error {
	if err := s.documents.DeleteOne(ctx, CollectionOrganizations, Document{"organization_id": orgId}); err != nil {
		return fmt.Errorf("failed to delete org[%s]: %w", orgId, err)
	}
	return nil
}

func (s *TenantStore) DeleteAdmin(ctx context.Context, adminId string) error {
	if err := s.documents.DeleteOne(ctx, CollectionAdmins, Document{"admin_id": adminId}); err != nil {
		return fmt.Errorf("failed to delete admin[%s]: %w", adminId, err)
	}
	return nil
}

// PreparePartition sets up the created_at index a tenant partition
// always carries, without writing any records. Rename uses this so the
// copied records (metadata included) arrive into a ready partition
func (s *TenantStore) PreparePartition(ctx context.Context, partitionKey string) error {
	if err := s.documents.EnsureIndex(ctx, partitionKey, "created_at", false); err != nil {
		return fmt.Errorf("failed to index partition[%s] on created_at: %w", partitionKey, err)
	}
	return nil
}

// ProvisionPartition creates a tenant partition: the created_at index
// and the single metadata record every partition starts with
func (s *TenantStore) ProvisionPartition(ctx context.Context, partitionKey string, orgId string, description string, createdAt time.Time) error {
	if err := s.PreparePartition(ctx, partitionKey); err != nil {
		return err
	}
	if err := s.documents.InsertOne(ctx, partitionKey, Document{
		"type":            MetadataRecordType,
		"organization_id": orgId,
		"created_at":      createdAt,
		"description":     description,
	}); err != nil {
		return fmt.Errorf("failed to write metadata into partition[%s]: %w", partitionKey, err)
	}
	return nil
}

// CopyPartition copies every record from one partition into another
// verbatim, document identity included, and returns the number of
// records copied. A failure partway through leaves both partitions
// in place
func (s *TenantStore) CopyPartition(ctx context.Context, fromPartitionKey string, toPartitionKey string) (int, error) {
	records, err := s.documents.ListAll(ctx, fromPartitionKey)
	if err != nil {
		return 0, fmt.Errorf("failed to list partition[%s]: %w", fromPartitionKey, err)
	}
	copied := 0
	for _, record := range records {
		if err := s.documents.InsertOne(ctx, toPartitionKey, record); err != nil {
			return copied, fmt.Errorf("failed to copy record into partition[%s]: %w", toPartitionKey, err)
		}
		copied++
	}
	return copied, nil
}

func (s *TenantStore) DropPartition(ctx context.Context, partitionKey string) error {
	if err := s.documents.Drop(ctx, partitionKey); err != nil {
		return fmt.Errorf("failed to drop partition[%s]: %w", partitionKey, err)
	}
	return nil
}

func (s *TenantStore) PartitionRecords(ctx context.Context, partitionKey string) ([]Document, error) {
	return s.documents.ListAll(ctx, partitionKey)
}

func (s *TenantStore) PartitionExists(ctx context.Context, partitionKey string) (bool, error) {
	return s.documents.Exists(ctx, partitionKey)
}
