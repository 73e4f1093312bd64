package database

import (
	"net/url"
	"regexp"
	"strings"
)

const maskedSecret = "xxxxx"

var (
	// password=secret or password='se cret' in key/value connection strings
	kvPasswordPattern = regexp.MustCompile(`(?i)(password\s*=\s*)('(?:[^'\\]|\\.)*'|[^\s&]+)`)
	// user:secret@ inside URLs embedded in a larger text
	urlUserinfoPattern = regexp.MustCompile(`(://[^:/@\s]+:)[^@\s]+@`)
)

// MaskDSN hides credentials embedded in a connection string or in text that
// contains one. Strings without credentials are returned unchanged.
func MaskDSN(dsn string) string {
	if dsn == "" {
		return ""
	}

	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && !strings.ContainsAny(dsn, " \t") {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), maskedSecret)
		}
		q := u.Query()
		if q.Has("password") {
			q.Set("password", maskedSecret)
			u.RawQuery = q.Encode()
		}
		return u.String()
	}

	masked := urlUserinfoPattern.ReplaceAllString(dsn, "${1}"+maskedSecret+"@")
	return kvPasswordPattern.ReplaceAllString(masked, "${1}"+maskedSecret)
}
