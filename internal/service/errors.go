package service

import (
	"errors"
	"fmt"
	"strings"

	"ai-council-be/internal/pkg/serverutils"
	"ai-council-be/pkg/agents"
)

var (
	ErrEmailTaken         = serverutils.Conflict("User with this email already exists")
	ErrInvalidCredentials = serverutils.Unauthorized("Invalid email or password")
	ErrUserNotFound       = serverutils.NotFound("User not found")

	ErrCouncilNotFound  = serverutils.NotFound("Council not found")
	ErrCouncilForbidden = serverutils.Forbidden("Unauthorized: You do not have access to this council")
	ErrInvalidStatus    = serverutils.BadRequest("Invalid council status")

	ErrMemoryNotFound        = serverutils.NotFound("Memory not found")
	ErrMemoryForbidden       = serverutils.Forbidden("Unauthorized: You do not have access to this memory")
	ErrMemoryDeleteForbidden = serverutils.Forbidden("Unauthorized: You cannot delete this memory")

	ErrMessageEmpty       = serverutils.BadRequest("Message content cannot be empty")
	ErrAgentQueryRequired = serverutils.BadRequest("Search query parameter \"q\" is required")
)

// ErrEmbeddingDimension means a provider returned a vector of the wrong length.
var ErrEmbeddingDimension = errors.New("embedding has unexpected dimensionality")

func agentNotFound(id string) error {
	return serverutils.NotFound("Agent not found: " + id)
}

func invalidCategory() error {
	names := make([]string, len(agents.Categories))
	for i, c := range agents.Categories {
		names[i] = string(c)
	}
	return serverutils.BadRequest("Invalid category. Must be one of: " + strings.Join(names, ", "))
}

func messageTooLong(max int) error {
	return serverutils.BadRequest(fmt.Sprintf("Message too long (max %d characters)", max))
}
