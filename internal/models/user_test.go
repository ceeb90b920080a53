package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserConstructors(t *testing.T) {
	individual := NewIndividualUser("ada@example.com", "hash", "Ada", "Obi")
	require.False(t, individual.IsActive, "individuals stay inactive until verified")
	require.False(t, individual.IsCompany)
	require.False(t, individual.IsStaff)
	require.Nil(t, individual.BusinessName)

	company := NewCompanyUser("ng@example.com", "hash", "Ngozi", "Eze", "Prime Estates")
	require.False(t, company.IsActive, "companies stay inactive until verified")
	require.True(t, company.IsCompany)
	require.Equal(t, "Prime Estates", *company.BusinessName)

	admin := NewAdminUser("ops@example.com", "hash")
	require.True(t, admin.IsActive, "admin accounts skip verification")
	require.True(t, admin.IsStaff)
	require.True(t, admin.IsSuperuser)
}
