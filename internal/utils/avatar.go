package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL derives the avatar URL assigned to a user at registration:
// a 200px, PG-rated Gravatar with the mystery-man fallback.
func GravatarURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
