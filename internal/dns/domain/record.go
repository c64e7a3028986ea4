package domain

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeMX    RecordType = "MX"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeSPF   RecordType = "SPF"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeLOC   RecordType = "LOC"
	RecordTypeURI   RecordType = "URI"
)

// Record represents a single DNS record.
type Record struct {
	// ID is the provider-assigned record identifier.
	ID string `json:"id"`

	// Domain is the zone this record belongs to (e.g. "example.com").
	Domain string `json:"domain"`

	// Name is the node name relative to the zone (e.g. "www" or
	// "_acme-challenge.my"). Empty for a record on the zone apex.
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, TXT, etc.).
	Type RecordType `json:"type"`

	// Content is the record value (IP address, hostname, text, etc.).
	Content string `json:"content"`

	// TTL is the time-to-live in seconds. The minimum is provider-dependent.
	TTL int `json:"ttl"`

	// Priority is used for record types that support it (MX, SRV, etc.).
	// Zero means not applicable.
	Priority int `json:"priority"`

	// Enabled reports whether the provider currently serves the record.
	Enabled bool `json:"enabled"`
}

// Domain represents a DNS zone in the provider account.
type Domain struct {
	// ID is the provider-assigned zone identifier.
	ID string `json:"id"`

	// Name is the registered zone name (e.g. "example.com").
	Name string `json:"name"`

	// Status is the current zone status (e.g. "ACTIVE").
	Status string `json:"status"`

	// CreateDate is when the zone was created in the account.
	CreateDate string `json:"create_date"`
}
