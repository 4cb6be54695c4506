package organizations

import (
	"context"
	"errors"
	"fmt"
	"tenantry/internal/auth"
	"tenantry/internal/validate"
	"time"

	"github.com/google/uuid"
)

type CreateOrgV1Opts struct {
	Store *TenantStore

	Name        string
	Description string
	Email       string
	Password    string
}

// CreateOrgV1 registers a new organization: one admin account, one
// catalog record, and one freshly provisioned tenant partition. The
// four writes are not wrapped in a transaction, a failure partway
// through leaves the earlier writes in place
func CreateOrgV1(ctx context.Context, opts CreateOrgV1Opts) (*OrganizationView, error) {
	// the length and charset rules bind on the normalized name, a
	// separator-only input would otherwise normalize to an empty name
	normalizedName := Normalize(opts.Name)
	if err := validate.OrgName(normalizedName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorInvalidInput, err)
	}
	if err := validate.Email(opts.Email); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorInvalidInput, err)
	}
	if err := validate.Password(opts.Password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorInvalidInput, err)
	}

	// both duplicate checks happen before any write, a duplicate name
	// and a duplicate email are independent failure conditions
	if _, err := opts.Store.GetOrgByName(ctx, normalizedName); err == nil {
		return nil, fmt.Errorf("org[%s]: %w", normalizedName, ErrorOrgExists)
	} else if !errors.Is(err, ErrorOrgNotFound) {
		return nil, err
	}
	if _, err := opts.Store.GetAdminByEmail(ctx, opts.Email); err == nil {
		return nil, fmt.Errorf("admin[%s]: %w", opts.Email, ErrorEmailExists)
	} else if !errors.Is(err, ErrorDocumentNotFound) {
		return nil, fmt.Errorf("failed to check admin[%s]: %w", opts.Email, err)
	}

	passwordHash, err := auth.HashPassword(opts.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	admin := Admin{
		AdminId:        uuid.NewString(),
		Email:          opts.Email,
		PasswordHash:   passwordHash,
		OrganizationId: uuid.NewString(),
		CreatedAt:      now,
		IsActive:       true,
	}
	org := Organization{
		OrganizationId:   admin.OrganizationId,
		OrganizationName: normalizedName,
		PartitionKey:     GetPartitionKey(normalizedName),
		AdminId:          admin.AdminId,
		CreatedAt:        now,
	}

	if err := opts.Store.InsertAdmin(ctx, admin); err != nil {
		return nil, err
	}
	if err := opts.Store.InsertOrg(ctx, org); err != nil {
		return nil, err
	}
	if err := opts.Store.ProvisionPartition(ctx, org.PartitionKey, org.OrganizationId, opts.Description, now); err != nil {
		return nil, err
	}

	return &OrganizationView{
		OrganizationId:   org.OrganizationId,
		OrganizationName: org.OrganizationName,
		PartitionKey:     org.PartitionKey,
		AdminEmail:       admin.Email,
		CreatedAt:        org.CreatedAt,
	}, nil
}

type GetOrgV1Opts struct {
	Store *TenantStore

	Name string
}

// GetOrgV1 joins the organization record with its admin's email, the
// email degrades to a sentinel when the admin record is missing
func GetOrgV1(ctx context.Context, opts GetOrgV1Opts) (*OrganizationView, error) {
	org, err := opts.Store.GetOrgByName(ctx, Normalize(opts.Name))
	if err != nil {
		return nil, err
	}
	return getOrgView(ctx, opts.Store, org), nil
}

func getOrgView(ctx context.Context, store *TenantStore, org *Organization) *OrganizationView {
	adminEmail := AdminEmailUnknown
	if admin, err := store.GetAdminById(ctx, org.AdminId); err == nil {
		adminEmail = admin.Email
	}
	return &OrganizationView{
		OrganizationId:   org.OrganizationId,
		OrganizationName: org.OrganizationName,
		PartitionKey:     org.PartitionKey,
		AdminEmail:       adminEmail,
		CreatedAt:        org.CreatedAt,
		UpdatedAt:        org.UpdatedAt,
	}
}

type UpdateOrgV1Opts struct {
	Store *TenantStore

	Name        string
	NewName     string
	CallerOrgId string
}

// UpdateOrgV1 renames an organization. Because the partition key is
// derived from the name, a rename is a full copy-and-swap: prepare the
// new partition, copy every record verbatim, repoint the catalog
// record, then drop the old partition. A failure between copy and drop
// leaves both partitions present and is surfaced as-is
func UpdateOrgV1(ctx context.Context, opts UpdateOrgV1Opts) (*OrganizationView, error) {
	// same as on create, the name rules bind on the normalized form
	newName := Normalize(opts.NewName)
	if err := validate.OrgName(newName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorInvalidInput, err)
	}

	org, err := opts.Store.GetOrgByName(ctx, Normalize(opts.Name))
	if err != nil {
		return nil, err
	}
	if org.OrganizationId != opts.CallerOrgId {
		return nil, fmt.Errorf("org[%s]: %w", org.OrganizationName, ErrorNotAuthorized)
	}

	now := time.Now()
	if newName == org.OrganizationName {
		// nothing to migrate, just bump the update timestamp
		if err := opts.Store.UpdateOrgName(ctx, org.OrganizationId, org.OrganizationName, org.PartitionKey, now); err != nil {
			return nil, err
		}
		org.UpdatedAt = &now
		return getOrgView(ctx, opts.Store, org), nil
	}

	if _, err := opts.Store.GetOrgByName(ctx, newName); err == nil {
		return nil, fmt.Errorf("org[%s]: %w", newName, ErrorOrgExists)
	} else if !errors.Is(err, ErrorOrgNotFound) {
		return nil, err
	}

	newPartitionKey := GetPartitionKey(newName)
	if err := opts.Store.PreparePartition(ctx, newPartitionKey); err != nil {
		return nil, err
	}
	if _, err := opts.Store.CopyPartition(ctx, org.PartitionKey, newPartitionKey); err != nil {
		return nil, err
	}
	if err := opts.Store.UpdateOrgName(ctx, org.OrganizationId, newName, newPartitionKey, now); err != nil {
		return nil, err
	}
	if err := opts.Store.DropPartition(ctx, org.PartitionKey); err != nil {
		return nil, err
	}

	org.OrganizationName = newName
	org.PartitionKey = newPartitionKey
	org.UpdatedAt = &now
	return getOrgView(ctx, opts.Store, org), nil
}

type DeleteOrgV1Opts struct {
	Store *TenantStore

	Name        string
	CallerOrgId string
}

type DeleteOrgV1Output struct {
	OrganizationId string `json:"organizationId"`
	Message        string `json:"message"`
}

// DeleteOrgV1 removes an organization: partition first, then the admin
// record, then the catalog record. Each step is independently fallible
// and no compensation is attempted when a later step fails
func DeleteOrgV1(ctx context.Context, opts DeleteOrgV1Opts) (*DeleteOrgV1Output, error) {
	org, err := opts.Store.GetOrgByName(ctx, Normalize(opts.Name))
	if err != nil {
		return nil, err
	}
	if org.OrganizationId != opts.CallerOrgId {
		return nil, fmt.Errorf("org[%s]: %w", org.OrganizationName, ErrorNotAuthorized)
	}

	if err := opts.Store.DropPartition(ctx, org.PartitionKey); err != nil {
		return nil, err
	}
	if err := opts.Store.DeleteAdmin(ctx, org.AdminId); err != nil {
		return nil, err
	}
	if err := opts.Store.DeleteOrg(ctx, org.OrganizationId); err != nil {
		return nil, err
	}

	return &DeleteOrgV1Output{
		OrganizationId: org.OrganizationId,
		Message:        fmt.Sprintf("organization[%s] deleted", org.OrganizationName),
	}, nil
}

type AdminLoginV1Opts struct {
	Store *TenantStore

	Email    string
	Password string

	JwtSecret string
	JwtIssuer string
	TokenTtl  time.Duration
}

type AdminLoginV1Output struct {
	AccessToken      string `json:"accessToken"`
	TokenType        string `json:"tokenType"`
	OrganizationName string `json:"organizationName"`
	AdminEmail       string `json:"adminEmail"`
}

// AdminLoginV1 authenticates an admin and issues a bearer token scoped
// to their organization. Unknown email and wrong password both come
// back as the same ErrorInvalidCredentials
func AdminLoginV1(ctx context.Context, opts AdminLoginV1Opts) (*AdminLoginV1Output, error) {
	admin, err := opts.Store.GetAdminByEmail(ctx, opts.Email)
	if err != nil {
		if errors.Is(err, ErrorDocumentNotFound) {
			return nil, ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin[%s]: %w", opts.Email, err)
	}
	if !auth.ValidatePassword(opts.Password, admin.PasswordHash) {
		return nil, ErrorInvalidCredentials
	}
	if !admin.IsActive {
		return nil, fmt.Errorf("admin[%s]: %w", admin.AdminId, ErrorAccountSuspended)
	}

	org, err := opts.Store.GetOrgById(ctx, admin.OrganizationId)
	if err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateJwt(auth.GenerateJwtOpts{
		AdminId: admin.AdminId,
		Email:   admin.Email,
		Id:      uuid.NewString(),
		Issuer:  opts.JwtIssuer,
		OrgId:   org.OrganizationId,
		OrgName: org.OrganizationName,
		Secret:  opts.JwtSecret,
		Ttl:     opts.TokenTtl,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AdminLoginV1Output{
		AccessToken:      accessToken,
		TokenType:        "bearer",
		OrganizationName: org.OrganizationName,
		AdminEmail:       admin.Email,
	}, nil
}
