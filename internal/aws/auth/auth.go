package auth

import "errors"

var ErrUnauthorized = errors.New("unauthorized")

// UserId extracts the caller's Cognito subject from an API Gateway
// authorizer context. HTTP API routes nest the claims under "jwt";
// websocket routes attach them directly.
func UserId(authorizer map[string]interface{}) (string, error) {
	claims := authorizer
	if jwt, ok := authorizer["jwt"].(map[string]interface{}); ok {
		claims, ok = jwt["claims"].(map[string]interface{})
		if !ok {
			return "", ErrUnauthorized
		}
	} else if nested, ok := authorizer["claims"].(map[string]interface{}); ok {
		claims = nested
	}
	userId, ok := claims["sub"].(string)
	if !ok {
		return "", ErrUnauthorized
	}
	return userId, nil
}

// MustAuth is UserId for handlers that let the Lambda runtime surface
// authorizer misconfiguration as a panic.
func MustAuth(authorizer map[string]interface{}) string {
	userId, err := UserId(authorizer)
	if err != nil {
		panic(err)
	}
	return userId
}
