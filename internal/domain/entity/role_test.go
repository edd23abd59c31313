package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superadmin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_HasRole(t *testing.T) {
	assert.True(t, RoleAdmin.HasRole(RoleAdmin))
	assert.False(t, RoleUser.HasRole(RoleAdmin))
	assert.False(t, RoleAdmin.HasRole(RoleUser))
}
