package organizations

import (
	"context"
	"errors"
	"fmt"
	"tenantry/internal/auth"
	"testing"
	"time"
)

const (
	testJwtSecret = "test-signing-secret"
	testJwtIssuer = "tenantry/test"
	testPassword  = "password123"
)

func createTestOrg(t *testing.T, store *TenantStore, name string, email string) *OrganizationView {
	t.Helper()
	view, err := CreateOrgV1(context.Background(), CreateOrgV1Opts{
		Store:       store,
		Name:        name,
		Description: "a test tenant",
		Email:       email,
		Password:    testPassword,
	})
	if err != nil {
		t.Fatalf("failed to create org[%s]: %s", name, err)
	}
	return view
}

func loginTestAdmin(store *TenantStore, email string, password string) (*AdminLoginV1Output, error) {
	return AdminLoginV1(context.Background(), AdminLoginV1Opts{
		Store:     store,
		Email:     email,
		Password:  password,
		JwtSecret: testJwtSecret,
		JwtIssuer: testJwtIssuer,
		TokenTtl:  time.Minute,
	})
}

func TestCreateOrgV1(t *testing.T) {
	store, documents := newTestStore(t)

	view := createTestOrg(t, store, "Acme Corp", "admin@acme.com")
	if view.OrganizationName != "acme_corp" {
		t.Errorf("expected normalized name acme_corp, got %s", view.OrganizationName)
	}
	if view.PartitionKey != "org_acme_corp" {
		t.Errorf("expected partition key org_acme_corp, got %s", view.PartitionKey)
	}
	if view.AdminEmail != "admin@acme.com" {
		t.Errorf("expected admin email to be returned, got %s", view.AdminEmail)
	}
	if view.OrganizationId == "" {
		t.Errorf("expected an organization id to be generated")
	}

	records := documents.collections["org_acme_corp"]
	if len(records) != 1 {
		t.Fatalf("expected exactly the metadata record in the new partition, got %d records", len(records))
	}
	if records[0]["type"] != MetadataRecordType {
		t.Errorf("expected a metadata record, got %v", records[0])
	}
	if records[0]["organization_id"] != view.OrganizationId {
		t.Errorf("expected metadata to reference org[%s], got %v", view.OrganizationId, records[0]["organization_id"])
	}
}

func TestCreateOrgV1_duplicateName(t *testing.T) {
	store, _ := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	_, err := CreateOrgV1(context.Background(), CreateOrgV1Opts{
		Store:    store,
		Name:     "ACME-corp",
		Email:    "other@acme.com",
		Password: testPassword,
	})
	if !errors.Is(err, ErrorOrgExists) {
		t.Errorf("expected ErrorOrgExists, got: %s", err)
	}
}

func TestCreateOrgV1_duplicateEmail(t *testing.T) {
	store, _ := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	_, err := CreateOrgV1(context.Background(), CreateOrgV1Opts{
		Store:    store,
		Name:     "Globex",
		Email:    "admin@acme.com",
		Password: testPassword,
	})
	if !errors.Is(err, ErrorEmailExists) {
		t.Errorf("expected ErrorEmailExists, got: %s", err)
	}
}

func TestCreateOrgV1_invalidInput(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []CreateOrgV1Opts{
		{Store: store, Name: "ab", Email: "admin@acme.com", Password: testPassword},
		{Store: store, Name: "Acme Corp", Email: "not-an-email", Password: testPassword},
		{Store: store, Name: "Acme Corp", Email: "admin@acme.com", Password: "short"},
		// the length rules bind on the normalized name, so inputs made
		// of separators or padded with them have to be rejected too
		{Store: store, Name: "   ", Email: "admin@acme.com", Password: testPassword},
		{Store: store, Name: " a ", Email: "admin@acme.com", Password: testPassword},
		{Store: store, Name: "---", Email: "admin@acme.com", Password: testPassword},
	}
	for i, opts := range tests {
		if _, err := CreateOrgV1(context.Background(), opts); !errors.Is(err, ErrorInvalidInput) {
			t.Errorf("expected case %d to fail with ErrorInvalidInput, got: %s", i, err)
		}
	}
}

func TestGetOrgV1(t *testing.T) {
	store, _ := newTestStore(t)
	created := createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	view, err := GetOrgV1(context.Background(), GetOrgV1Opts{Store: store, Name: "Acme Corp"})
	if err != nil {
		t.Fatalf("failed to get org: %s", err)
	}
	if view.OrganizationId != created.OrganizationId {
		t.Errorf("expected org[%s], got org[%s]", created.OrganizationId, view.OrganizationId)
	}
	if view.OrganizationName != "acme_corp" || view.PartitionKey != "org_acme_corp" {
		t.Errorf("expected normalized name and derived partition key, got %s / %s", view.OrganizationName, view.PartitionKey)
	}

	if _, err := GetOrgV1(context.Background(), GetOrgV1Opts{Store: store, Name: "nonexistent"}); !errors.Is(err, ErrorOrgNotFound) {
		t.Errorf("expected ErrorOrgNotFound, got: %s", err)
	}
}

func TestGetOrgV1_missingAdminDegrades(t *testing.T) {
	store, documents := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	if err := documents.DeleteOne(context.Background(), CollectionAdmins, Document{"email": "admin@acme.com"}); err != nil {
		t.Fatalf("failed to remove admin record: %s", err)
	}

	view, err := GetOrgV1(context.Background(), GetOrgV1Opts{Store: store, Name: "Acme Corp"})
	if err != nil {
		t.Fatalf("failed to get org: %s", err)
	}
	if view.AdminEmail != AdminEmailUnknown {
		t.Errorf("expected admin email to degrade to %s, got %s", AdminEmailUnknown, view.AdminEmail)
	}
}

func TestUpdateOrgV1(t *testing.T) {
	store, documents := newTestStore(t)
	ctx := context.Background()
	created := createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	for i := 0; i < 3; i++ {
		if err := documents.InsertOne(ctx, created.PartitionKey, Document{"record": fmt.Sprintf("value-%d", i)}); err != nil {
			t.Fatalf("failed to seed partition: %s", err)
		}
	}
	before, _ := store.PartitionRecords(ctx, created.PartitionKey)

	view, err := UpdateOrgV1(ctx, UpdateOrgV1Opts{
		Store:       store,
		Name:        "Acme Corp",
		NewName:     "Acme Intl",
		CallerOrgId: created.OrganizationId,
	})
	if err != nil {
		t.Fatalf("failed to rename org: %s", err)
	}
	if view.OrganizationName != "acme_intl" || view.PartitionKey != "org_acme_intl" {
		t.Errorf("expected renamed view, got %s / %s", view.OrganizationName, view.PartitionKey)
	}
	if view.UpdatedAt == nil {
		t.Errorf("expected updatedAt to be set after rename")
	}

	if _, err := GetOrgV1(ctx, GetOrgV1Opts{Store: store, Name: "Acme Intl"}); err != nil {
		t.Errorf("expected get under the new name to succeed, got: %s", err)
	}
	if _, err := GetOrgV1(ctx, GetOrgV1Opts{Store: store, Name: "Acme Corp"}); !errors.Is(err, ErrorOrgNotFound) {
		t.Errorf("expected get under the old name to fail with ErrorOrgNotFound, got: %s", err)
	}

	after, _ := store.PartitionRecords(ctx, "org_acme_intl")
	if len(after) != len(before) {
		t.Fatalf("expected %d records to survive the migration, got %d", len(before), len(after))
	}
	for i := range before {
		if fmt.Sprint(before[i]) != fmt.Sprint(after[i]) {
			t.Errorf("expected record %d to be migrated verbatim, got %v vs %v", i, before[i], after[i])
		}
	}

	if exists, _ := store.PartitionExists(ctx, "org_acme_corp"); exists {
		t.Errorf("expected the old partition to be dropped")
	}
}

func TestUpdateOrgV1_sameName(t *testing.T) {
	store, documents := newTestStore(t)
	ctx := context.Background()
	created := createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	if err := documents.InsertOne(ctx, created.PartitionKey, Document{"record": "value"}); err != nil {
		t.Fatalf("failed to seed partition: %s", err)
	}
	before, _ := store.PartitionRecords(ctx, created.PartitionKey)

	// "ACME-corp" normalizes to the current name, so this must not be
	// treated as a conflict with the org's own record and must not
	// trigger a partition migration
	view, err := UpdateOrgV1(ctx, UpdateOrgV1Opts{
		Store:       store,
		Name:        "Acme Corp",
		NewName:     "ACME-corp",
		CallerOrgId: created.OrganizationId,
	})
	if err != nil {
		t.Fatalf("failed to rename org to its current name: %s", err)
	}
	if view.OrganizationName != "acme_corp" || view.PartitionKey != "org_acme_corp" {
		t.Errorf("expected the name and partition key to stay put, got %s / %s", view.OrganizationName, view.PartitionKey)
	}
	if view.UpdatedAt == nil {
		t.Errorf("expected updatedAt to be bumped")
	}

	if exists, _ := store.PartitionExists(ctx, created.PartitionKey); !exists {
		t.Fatalf("expected the partition to remain in place")
	}
	after, _ := store.PartitionRecords(ctx, created.PartitionKey)
	if len(after) != len(before) {
		t.Errorf("expected the partition to be untouched, had %d records, now %d", len(before), len(after))
	}
}

func TestUpdateOrgV1_invalidNewName(t *testing.T) {
	store, _ := newTestStore(t)
	created := createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	for i, newName := range []string{"   ", " a ", "ab"} {
		_, err := UpdateOrgV1(context.Background(), UpdateOrgV1Opts{
			Store:       store,
			Name:        "Acme Corp",
			NewName:     newName,
			CallerOrgId: created.OrganizationId,
		})
		if !errors.Is(err, ErrorInvalidInput) {
			t.Errorf("expected case %d to fail with ErrorInvalidInput, got: %s", i, err)
		}
	}
}

func TestUpdateOrgV1_forbidden(t *testing.T) {
	store, _ := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	_, err := UpdateOrgV1(context.Background(), UpdateOrgV1Opts{
		Store:       store,
		Name:        "Acme Corp",
		NewName:     "Acme Intl",
		CallerOrgId: "someone-else",
	})
	if !errors.Is(err, ErrorNotAuthorized) {
		t.Errorf("expected ErrorNotAuthorized, got: %s", err)
	}
}

func TestUpdateOrgV1_conflict(t *testing.T) {
	store, _ := newTestStore(t)
	created := createTestOrg(t, store, "Acme Corp", "admin@acme.com")
	createTestOrg(t, store, "Globex", "admin@globex.com")

	_, err := UpdateOrgV1(context.Background(), UpdateOrgV1Opts{
		Store:       store,
		Name:        "Acme Corp",
		NewName:     "Globex",
		CallerOrgId: created.OrganizationId,
	})
	if !errors.Is(err, ErrorOrgExists) {
		t.Errorf("expected ErrorOrgExists, got: %s", err)
	}
}

func TestDeleteOrgV1(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	created := createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	output, err := DeleteOrgV1(ctx, DeleteOrgV1Opts{
		Store:       store,
		Name:        "Acme Corp",
		CallerOrgId: created.OrganizationId,
	})
	if err != nil {
		t.Fatalf("failed to delete org: %s", err)
	}
	if output.OrganizationId != created.OrganizationId {
		t.Errorf("expected confirmation for org[%s], got org[%s]", created.OrganizationId, output.OrganizationId)
	}

	if _, err := GetOrgV1(ctx, GetOrgV1Opts{Store: store, Name: "Acme Corp"}); !errors.Is(err, ErrorOrgNotFound) {
		t.Errorf("expected ErrorOrgNotFound after delete, got: %s", err)
	}
	if _, err := loginTestAdmin(store, "admin@acme.com", testPassword); !errors.Is(err, ErrorInvalidCredentials) {
		t.Errorf("expected login after delete to fail with ErrorInvalidCredentials, got: %s", err)
	}
	if exists, _ := store.PartitionExists(ctx, created.PartitionKey); exists {
		t.Errorf("expected the partition to be dropped")
	}
}

func TestDeleteOrgV1_forbidden(t *testing.T) {
	store, _ := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	_, err := DeleteOrgV1(context.Background(), DeleteOrgV1Opts{
		Store:       store,
		Name:        "Acme Corp",
		CallerOrgId: "someone-else",
	})
	if !errors.Is(err, ErrorNotAuthorized) {
		t.Errorf("expected ErrorNotAuthorized, got: %s", err)
	}
}

func TestAdminLoginV1(t *testing.T) {
	store, _ := newTestStore(t)
	created := createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	output, err := loginTestAdmin(store, "admin@acme.com", testPassword)
	if err != nil {
		t.Fatalf("failed to login: %s", err)
	}
	if output.TokenType != "bearer" {
		t.Errorf("expected token type bearer, got %s", output.TokenType)
	}
	if output.OrganizationName != "acme_corp" || output.AdminEmail != "admin@acme.com" {
		t.Errorf("expected org/admin identity in the output, got %s / %s", output.OrganizationName, output.AdminEmail)
	}

	claims, err := auth.ValidateJwt(testJwtSecret, output.AccessToken)
	if err != nil {
		t.Fatalf("expected the issued token to validate, got: %s", err)
	}
	if claims.OrgId != created.OrganizationId {
		t.Errorf("expected claims scoped to org[%s], got org[%s]", created.OrganizationId, claims.OrgId)
	}
	if claims.Email != "admin@acme.com" {
		t.Errorf("expected claims for the admin, got email[%s]", claims.Email)
	}
}

func TestAdminLoginV1_invalidCredentials(t *testing.T) {
	store, _ := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	if _, err := loginTestAdmin(store, "admin@acme.com", "wrong-password"); !errors.Is(err, ErrorInvalidCredentials) {
		t.Errorf("expected wrong password to fail with ErrorInvalidCredentials, got: %s", err)
	}
	if _, err := loginTestAdmin(store, "unknown@acme.com", testPassword); !errors.Is(err, ErrorInvalidCredentials) {
		t.Errorf("expected unknown email to fail with ErrorInvalidCredentials, got: %s", err)
	}
}

func TestAdminLoginV1_suspendedAccount(t *testing.T) {
	store, documents := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	if err := documents.UpdateOne(context.Background(), CollectionAdmins, Document{"email": "admin@acme.com"}, Document{"is_active": false}); err != nil {
		t.Fatalf("failed to suspend admin: %s", err)
	}

	if _, err := loginTestAdmin(store, "admin@acme.com", testPassword); !errors.Is(err, ErrorAccountSuspended) {
		t.Errorf("expected ErrorAccountSuspended, got: %s", err)
	}
}

func TestAdminLoginV1_orphanedAdmin(t *testing.T) {
	store, documents := newTestStore(t)
	createTestOrg(t, store, "Acme Corp", "admin@acme.com")

	if err := documents.DeleteOne(context.Background(), CollectionOrganizations, Document{"organization_name": "acme_corp"}); err != nil {
		t.Fatalf("failed to remove org record: %s", err)
	}

	if _, err := loginTestAdmin(store, "admin@acme.com", testPassword); !errors.Is(err, ErrorOrgNotFound) {
		t.Errorf("expected ErrorOrgNotFound, got: %s", err)
	}
}
