package test_utils

import (
	"context"

	"github.com/campcal/campcal/pkg/user"
)

// TestUser is a fixed identity for handler and service tests.
var TestUser = user.User{
	Id:          "7f9c24e5-2b6a-4f0e-9c3d-1a8b5e6d4c2f",
	Sub:         "test-sub-123",
	Email:       "camper@example.com",
	DisplayName: "Test Camper",
	Settings: user.CalendarSyncSettings{
		Enabled:          true,
		GoogleCalendarId: "primary",
	},
}

// ContextWithTestUser returns ctx carrying TestUser as the authenticated user.
func ContextWithTestUser(ctx context.Context) context.Context {
	return user.WithUser(ctx, TestUser)
}
