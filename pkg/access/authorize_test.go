package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	sessionOwner := uuid.New()

	tests := []struct {
		name     string
		actor    Actor
		owners   []uuid.UUID
		expected Decision
	}{
		{"owner", Actor{ID: owner, Role: "brand_manager"}, []uuid.UUID{owner}, Allow},
		{"stranger", Actor{ID: other, Role: "brand_manager"}, []uuid.UUID{owner}, Deny},
		{"admin without ownership", Actor{ID: other, Role: RoleAdmin}, []uuid.UUID{owner}, Allow},
		{"any of several owners", Actor{ID: sessionOwner, Role: "content_creator"}, []uuid.UUID{sessionOwner, owner}, Allow},
		{"no owners", Actor{ID: other, Role: "content_creator"}, nil, Deny},
		{"nil actor never matches nil owner", Actor{Role: "content_creator"}, []uuid.UUID{uuid.Nil}, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Authorize(tt.actor, tt.owners...))
		})
	}
}

func TestCheckReportsMissingBeforeDenied(t *testing.T) {
	stranger := Actor{ID: uuid.New(), Role: "content_creator"}
	admin := Actor{ID: uuid.New(), Role: RoleAdmin}

	assert.Equal(t, Missing, Check(stranger, false, uuid.New()))
	assert.Equal(t, Missing, Check(admin, false))
	assert.Equal(t, Denied, Check(stranger, true, uuid.New()))
	assert.Equal(t, Granted, Check(admin, true, uuid.New()))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "ALLOW", Allow.String())
	assert.Equal(t, "DENY", Deny.String())
}
