package common

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerValue formats an access token as an Authorization header value.
func BearerValue(token string) string {
	return BearerPrefix + token
}
