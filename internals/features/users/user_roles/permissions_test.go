package user_roles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
)

func TestResolvePermissions_TotalityOverAllRoles(t *testing.T) {
	inputs := append([]string{"", "inconnu", "  ", "ADMIN"}, constants.AllRoles...)

	for _, role := range inputs {
		p := ResolvePermissions(role)
		assert.NotEmpty(t, p.RoleLabel, "role=%q doit toujours avoir un libellé", role)
	}
}

func TestResolvePermissions_UnknownRole(t *testing.T) {
	p := ResolvePermissions("gardien_du_temple")

	assert.Equal(t, "Membre", p.RoleLabel)
	assert.False(t, p.ManageMembers)
	assert.False(t, p.ManageContributions)
	assert.False(t, p.ManageNews)
	assert.False(t, p.ViewReports)
	assert.False(t, p.ManageRoles)
	assert.False(t, p.Audit)
}

func TestResolvePermissions_AdminAndPresident(t *testing.T) {
	for _, role := range []string{constants.RoleAdmin, constants.RolePresident} {
		p := ResolvePermissions(role)
		assert.True(t, p.ManageMembers, role)
		assert.True(t, p.ManageContributions, role)
		assert.True(t, p.ManageNews, role)
		assert.True(t, p.ViewReports, role)
	}
}

func TestResolvePermissions_Auditor(t *testing.T) {
	p := ResolvePermissions(constants.RoleCommissaireComptes)

	assert.True(t, p.Audit)
	assert.True(t, p.ViewReports)
	assert.False(t, p.ManageRoles)
	assert.False(t, p.ManageContributions)
}

func TestResolvePermissions_ManageRolesOnlyAdmin(t *testing.T) {
	for _, role := range constants.AllRoles {
		p := ResolvePermissions(role)
		if role == constants.RoleAdmin {
			assert.True(t, p.ManageRoles, role)
		} else {
			assert.False(t, p.ManageRoles, role)
		}
	}
}

func TestResolvePermissions_Treasurer(t *testing.T) {
	for _, role := range []string{constants.RoleTresorier, constants.RoleTresorierAdjoint} {
		p := ResolvePermissions(role)
		assert.True(t, p.ManageContributions, role)
		assert.True(t, p.ViewReports, role)
		assert.False(t, p.ManageMembers, role)
		assert.False(t, p.ManageNews, role)
	}
}

func TestResolvePermissions_FamilyRolesHaveNoGlobalCapabilities(t *testing.T) {
	for _, role := range []string{constants.RoleChefFamille, constants.RoleResponsableFamille, constants.RoleMembre} {
		p := ResolvePermissions(role)
		assert.False(t, p.ManageContributions, role)
		assert.False(t, p.ManageRoles, role)
		assert.False(t, p.Audit, role)
		assert.NotEqual(t, "", p.RoleLabel, role)
	}
}
