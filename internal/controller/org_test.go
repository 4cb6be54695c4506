package controller

import (
	"tenantry/internal/organizations"
	"tenantry/internal/testutils"
	"tenantry/pkg/controller"
	"testing"
)

func TestOrgSdkContracts(t *testing.T) {
	testutils.ValidateModelContract(handleCreateOrgV1Input{}, controller.CreateOrgV1Input{}, t)
	testutils.ValidateModelContract(handleUpdateOrgV1Input{}, controller.UpdateOrgV1Input{}, t)
	testutils.ValidateModelContract(organizations.OrganizationView{}, controller.OrgV1OutputData{}, t)
	testutils.ValidateModelContract(organizations.DeleteOrgV1Output{}, controller.DeleteOrgV1OutputData{}, t)
}
