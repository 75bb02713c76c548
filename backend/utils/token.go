package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AdminCookieName — имя cookie с токеном администратора.
const AdminCookieName = "adminToken"

// AdminTokenTTL is both the cookie max-age and the server-side expiry
// of the token itself.
const AdminTokenTTL = 24 * time.Hour

// GenerateAdminToken encodes "username:issuedMillis" with base64. The
// token is deliberately reversible and unsigned: it only marks an admin
// session, it is not a credential.
func GenerateAdminToken(username string, issued time.Time) string {
	payload := fmt.Sprintf("%s:%d", username, issued.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// ParseAdminToken decodes a token and returns its username and issue
// time. The payload must be exactly two parts, "username:timestamp",
// with a non-empty username and a numeric millisecond timestamp.
func ParseAdminToken(token string) (string, time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, errors.New("malformed admin token")
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 2 || parts[0] == "" {
		return "", time.Time{}, errors.New("malformed admin token")
	}

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", time.Time{}, errors.New("malformed admin token")
	}

	return parts[0], time.UnixMilli(millis), nil
}

// AdminTokenValid reports whether the token parses and was issued less
// than AdminTokenTTL before now.
func AdminTokenValid(token string, now time.Time) bool {
	_, issued, err := ParseAdminToken(token)
	if err != nil {
		return false
	}
	return now.Sub(issued) < AdminTokenTTL
}
