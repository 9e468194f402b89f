package lambda

import (
	"github.com/aws/aws-lambda-go/events"

	"booking-api/internal/models"
)

// IdentityFromContext extracts the trusted identity the API Gateway
// authorizer placed on the request context. The fields are read as-is; token
// verification happened in the authorizer. A missing or malformed context
// yields an empty identity, which the pipeline treats as unauthenticated.
func IdentityFromContext(rc events.APIGatewayProxyRequestContext) models.RequestIdentity {
	auth := rc.Authorizer
	if auth == nil {
		return models.RequestIdentity{}
	}

	// Custom authorizers put context keys at the top level; JWT authorizers
	// nest them under "claims".
	if claims, ok := auth["claims"].(map[string]interface{}); ok {
		if _, present := claims["userId"]; present {
			auth = claims
		}
	}

	identity := models.RequestIdentity{}
	if userID, ok := auth["userId"].(string); ok {
		identity.UserID = userID
	}
	if role, ok := auth["role"].(string); ok {
		identity.Role = role
	}
	return identity
}
