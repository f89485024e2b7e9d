package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	user := &User{
		Name:  "  Amr Salem  ",
		Email: "  Amr.Salem@Example.COM ",
	}

	user.Normalize()

	assert.Equal(t, "Amr Salem", user.Name)
	assert.Equal(t, "amr.salem@example.com", user.Email)
	assert.Equal(t, "amr-salem", user.Slug)
	assert.Equal(t, RoleUser, user.Role)
}

func TestNormalizeKeepsExplicitRole(t *testing.T) {
	user := &User{Name: "A", Email: "a@b.com", Role: RoleAdmin}

	user.Normalize()

	assert.Equal(t, RoleAdmin, user.Role)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "Alice", want: "alice"},
		{name: "multiple words", in: "Alice Van Der Berg", want: "alice-van-der-berg"},
		{name: "extra whitespace", in: "  Alice   Berg ", want: "alice-berg"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("user"))
	assert.True(t, ValidRole("manager"))
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))
}

func TestUserPatchEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.Empty())

	name := "Alice"
	assert.False(t, UserPatch{Name: &name}.Empty())
}

func TestUserPatchSetDocument(t *testing.T) {
	name := "Alice Berg"
	email := " Alice@Example.com "
	password := "newpassword"

	set := UserPatch{Name: &name, Email: &email, Password: &password}.SetDocument()

	assert.Equal(t, "Alice Berg", set["name"])
	assert.Equal(t, "alice-berg", set["slug"])
	assert.Equal(t, "alice@example.com", set["email"])
	assert.Equal(t, "newpassword", set["password"])
	require.Contains(t, set, "passwordChangedAt")
}

func TestUserPatchSetDocumentSkipsNilFields(t *testing.T) {
	phone := "+201234567890"

	set := UserPatch{Phone: &phone}.SetDocument()

	assert.Equal(t, bsonKeys(set), []string{"phone"})
}

func bsonKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
