package auditlog

import "regexp"

// keyAuthPattern matches base64url blobs of the length lego uses for
// DNS-01 key authorization digests (43 chars of [A-Za-z0-9_-]).
var keyAuthPattern = regexp.MustCompile(`[A-Za-z0-9_-]{40,}`)

// SanitizeDetail masks anything that looks like a challenge token or key
// authorization digest before it is persisted. Error messages from the
// provider sometimes echo the record value back; the audit trail must not
// keep it.
func SanitizeDetail(detail string) string {
	return keyAuthPattern.ReplaceAllString(detail, "[redacted]")
}
