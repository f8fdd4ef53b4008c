package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, model any, field string) string {
	t.Helper()

	f, ok := reflect.TypeOf(model).FieldByName(field)
	require.True(t, ok, "field %s not found", field)

	return f.Tag.Get("gorm")
}

// Owned collections must cascade on delete so removing a user or product
// cannot strand child rows.
func TestOwnedAssociationsCascade(t *testing.T) {
	cases := []struct {
		name  string
		model any
		field string
	}{
		{"UserOrders", UserModel{}, "Orders"},
		{"UserReviews", UserModel{}, "Reviews"},
		{"ProductImages", ProductModel{}, "Images"},
		{"ProductReviews", ProductModel{}, "Reviews"},
		{"OrderItems", OrderModel{}, "Items"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tag := gormTag(t, tc.model, tc.field)
			assert.True(t, strings.Contains(tag, "constraint:OnDelete:CASCADE"), "tag %q", tag)
		})
	}
}

func TestUserUniqueColumns(t *testing.T) {
	assert.Contains(t, gormTag(t, UserModel{}, "Email"), "unique")
	assert.Contains(t, gormTag(t, UserModel{}, "PhoneNumber"), "unique")
}
