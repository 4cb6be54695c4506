package organizations

import "time"

const (
	// CollectionOrganizations is the master catalog collection holding
	// one record per organization
	CollectionOrganizations = "organizations"

	// CollectionAdmins is the master catalog collection holding one
	// record per admin account
	CollectionAdmins = "admins"

	// PartitionKeyPrefix is prepended to a normalized organization name
	// to derive the name of its tenant partition collection
	PartitionKeyPrefix = "org_"

	// MetadataRecordType marks the single metadata record written into
	// every tenant partition at provisioning time
	MetadataRecordType = "metadata"

	// AdminEmailUnknown is what the admin email degrades to when the
	// organization's admin record is missing
	AdminEmailUnknown = "N/A"
)

type Organization struct {
	// OrganizationId is a UUID that identifies the organization uniquely,
	// it is generated at creation and never changes
	OrganizationId string `bson:"organization_id" json:"organizationId"`

	// OrganizationName is the normalized, globally unique name
	OrganizationName string `bson:"organization_name" json:"organizationName"`

	// PartitionKey names the tenant partition collection, it is always
	// derivable as PartitionKeyPrefix + OrganizationName and moves with
	// the name on rename
	PartitionKey string `bson:"partition_key" json:"partitionKey"`

	// AdminId references the single admin account owning this organization
	AdminId string `bson:"admin_id" json:"adminId"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

type Admin struct {
	AdminId        string    `bson:"admin_id" json:"adminId"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	OrganizationId string    `bson:"organization_id" json:"organizationId"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	IsActive       bool      `bson:"is_active" json:"isActive"`
}

// OrganizationView is the read model returned by the lifecycle
// operations, it joins the organization record with its admin's email
type OrganizationView struct {
	OrganizationId   string     `json:"organizationId"`
	OrganizationName string     `json:"organizationName"`
	PartitionKey     string     `json:"partitionKey"`
	AdminEmail       string     `json:"adminEmail"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}
