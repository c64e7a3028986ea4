package domain

// CreateRecordOpts holds the parameters for creating a new DNS record.
type CreateRecordOpts struct {
	// Name is the node name relative to the zone, not including the zone
	// itself. Leave empty to create a record on the zone apex.
	Name string

	// Type is the DNS record type. Required.
	Type RecordType

	// Content is the record value. Required.
	Content string

	// TTL is the time-to-live in seconds.
	// Zero means use the provider default (300 for Dynu).
	TTL int

	// Priority is used for record types that support it (MX, SRV, etc.).
	Priority int
}

// UpdateRecordOpts holds the parameters for updating an existing DNS record.
type UpdateRecordOpts struct {
	// Name is the new node name. Leave empty to keep unchanged.
	Name string

	// Type is the new record type.
	Type RecordType

	// Content is the new record value. Required.
	Content string

	// TTL is the new time-to-live in seconds.
	// Zero means use the provider default.
	TTL int

	// Priority is the new priority value.
	Priority int
}
