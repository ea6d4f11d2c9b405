package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Usernames are case-sensitive identifiers. MySQL's default utf8mb4
// collations compare case-insensitively, so every username column must pin
// a binary collation or "Green_hero" and "green_hero" collapse into one
// account under the SQL backend.
func TestUsernameColumnsUseBinaryCollation(t *testing.T) {
	for _, tc := range []struct {
		model interface{}
		field string
	}{
		{User{}, "Username"},
		{Tree{}, "Username"},
		{CategoryCount{}, "Username"},
		{UploadHash{}, "Username"},
		{Session{}, "Username"},
	} {
		f, ok := reflect.TypeOf(tc.model).FieldByName(tc.field)
		require.True(t, ok, "%T has no field %s", tc.model, tc.field)
		tag := f.Tag.Get("gorm")
		assert.True(t, strings.Contains(tag, "utf8mb4_bin"),
			"%T.%s gorm tag %q must declare a binary collation", tc.model, tc.field, tag)
	}
}

func TestAddRewardDistinctCategories(t *testing.T) {
	u := &User{Username: "green_hero"}
	u.AddReward(5, CategoryPlastics)
	u.AddReward(5, CategoryPlastics)
	u.AddReward(0, CategoryWaste)

	assert.Equal(t, 10, u.Points)
	assert.Equal(t, 10, u.TreeBank)

	got := u.RecycledByCategory()
	assert.Equal(t, 2, got[CategoryPlastics])
	assert.Equal(t, 1, got[CategoryWaste])
	assert.Equal(t, 0, got[CategoryGlass])
}
