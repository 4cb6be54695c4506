package controller

import (
	"tenantry/internal/organizations"
	"tenantry/internal/testutils"
	"tenantry/pkg/controller"
	"testing"
)

func TestSessionSdkContracts(t *testing.T) {
	testutils.ValidateModelContract(handleCreateSessionV1Input{}, controller.CreateSessionV1Input{}, t)
	testutils.ValidateModelContract(organizations.AdminLoginV1Output{}, controller.CreateSessionV1OutputData{}, t)
}
