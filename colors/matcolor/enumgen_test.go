// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "dark", Dark.String())
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "5", Mode(5).String())
	assert.False(t, Mode(5).IsValid())
	assert.Equal(t, []string{"dark", "light"}, Dark.Strings())

	var m Mode
	assert.NoError(t, m.SetString("Light"))
	assert.Equal(t, Light, m)
	assert.Error(t, m.SetString("dim"))
	assert.Equal(t, Light, m)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "on-primary-container", RoleOnPrimaryContainer.String())
	assert.Equal(t, "surface-container-lowest", RoleSurfaceContainerLowest.String())
	assert.Equal(t, "neutral-variant", FamilyNeutralVariant.String())
	assert.Len(t, RolePrimary.Strings(), len(RoleValues()))
	assert.True(t, RoleScrim.IsValid())
	assert.False(t, Role(-1).IsValid())

	var r Role
	assert.NoError(t, r.SetString("INVERSE-ON-SURFACE"))
	assert.Equal(t, RoleInverseOnSurface, r)
}

func TestEnumText(t *testing.T) {
	for _, m := range ModeValues() {
		b, err := m.MarshalText()
		assert.NoError(t, err)
		var n Mode
		assert.NoError(t, n.UnmarshalText(b))
		assert.Equal(t, m, n)
	}
	for _, f := range FamilyValues() {
		b, err := f.MarshalText()
		assert.NoError(t, err)
		var g Family
		assert.NoError(t, g.UnmarshalText(b))
		assert.Equal(t, f, g)
	}
	for _, r := range RoleValues() {
		b, err := r.MarshalText()
		assert.NoError(t, err)
		var s Role
		assert.NoError(t, s.UnmarshalText(b))
		assert.Equal(t, r, s)
	}
}
