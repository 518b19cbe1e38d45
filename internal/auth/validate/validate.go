// Package validate holds the syntactic acceptance rules for usernames,
// passwords, and emails. All three checks are pure byte scanners: '$' is
// rejected in usernames and emails because identifiers are interpolated
// into store queries, and the email scanner is deliberately a coarse
// byte-class filter, not an RFC grammar. Its exact accept set is part of
// the service's compatibility surface; do not tighten it.
package validate

// IsValidUsername reports whether s is 5-20 characters drawn from
// [A-Za-z0-9_-].
func IsValidUsername(s string) bool {
	if len(s) < 5 || len(s) > 20 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '-' || ch == '_':
		default:
			return false
		}
	}
	return true
}

// IsValidPassword reports whether s is 5-30 printable ASCII characters
// (0x20-0x7E), inclusive on both bounds. '$' is allowed here; only the
// username/email boundary rejects it.
func IsValidPassword(s string) bool {
	if len(s) < 5 || len(s) > 30 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}

// IsValidEmail scans s in three segments: up to an '@' (failing on '$'),
// then skipping two characters, then up to a '.' (failing on '@' or '$'),
// then to the end (failing on '$'). It succeeds only when the scan reaches
// the final character, so the '.' needs at least one character after it
// and the domain needs at least two characters before the '.'.
func IsValidEmail(s string) bool {
	if len(s) < 5 || len(s) > 100 {
		return false
	}
	i := 0
	for ; i < len(s); i++ {
		if s[i] == '@' {
			break
		}
		if s[i] == '$' {
			return false
		}
	}
	i += 2
	for ; i < len(s); i++ {
		if s[i] == '@' || s[i] == '$' {
			return false
		}
		if s[i] == '.' {
			break
		}
	}
	i++
	for ; i < len(s); i++ {
		if s[i] == '$' {
			return false
		}
		if i == len(s)-1 {
			return true
		}
	}
	return false
}
