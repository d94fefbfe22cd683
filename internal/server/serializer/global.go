// Package serializer renders the payloads consumed by the front end.
// Every response body is wrapped in the same envelope.
package serializer

// M is an arbitrary map.
type M map[string]any

// Success wraps body in the envelope of a successful response.
func Success(body M) M {
	return M{
		"isError": false,
		"body":    body,
	}
}

// Failure wraps message in the envelope of a failed response.
func Failure(message string) M {
	return M{
		"isError": true,
		"body": M{
			"message": message,
		},
	}
}

// Token renders a successful login. The token sits beside the envelope
// flag, not in the body.
func Token(token string) M {
	return M{
		"isError": false,
		"token":   token,
	}
}
