package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/dynucert/internal/dns/domain"
	"nathanbeddoewebdev/dynucert/internal/services/auth"
)

const (
	dynuBaseURL    = "https://api.dynu.com/v2"
	dynuTimeout    = 30 * time.Second
	dynuTokenStore = "dynu"
)

// Compile-time check that DynuProvider satisfies domain.Provider.
var _ domain.Provider = (*DynuProvider)(nil)

// DynuProvider implements domain.Provider using the Dynu API v2.
// It authenticates via an account API key sent in the API-Key header.
// It uses a direct HTTP client rather than an SDK to keep the dependency
// tree light and the code consistent with other providers.
type DynuProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewDynuProvider creates a DynuProvider with the given API key.
func NewDynuProvider(apiKey string) *DynuProvider {
	return &DynuProvider{
		apiKey:  apiKey,
		baseURL: dynuBaseURL,
		client:  &http.Client{Timeout: dynuTimeout},
	}
}

// RegisterDynu registers the Dynu provider factory with the DNS registry.
func RegisterDynu() {
	Register("dynu", func(store auth.Store) (domain.Provider, error) {
		apiKey, err := store.GetToken(dynuTokenStore)
		if err != nil {
			return nil, fmt.Errorf("dynu auth: API key not found (run 'dynucert auth login dynu'): %w", err)
		}
		return NewDynuProvider(apiKey), nil
	})
}

// GetDisplayName returns the human-readable provider name.
func (d *DynuProvider) GetDisplayName() string {
	return "Dynu"
}

// --- API request/response types ---

// dynuException is the error body Dynu returns alongside non-2xx statuses.
type dynuException struct {
	StatusCode int    `json:"statusCode"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

// dynuDomain is the Dynu DNS zone object.
type dynuDomain struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	UnicodeName string `json:"unicodeName"`
	State       string `json:"state"`
	CreatedOn   string `json:"createdOn"`
}

type dynuDomainList struct {
	Domains []dynuDomain `json:"domains"`
}

// dynuRecord is the Dynu DNS record object. Dynu spreads the record value
// over type-specific fields instead of a single content field.
type dynuRecord struct {
	ID          int64  `json:"id"`
	DomainID    int64  `json:"domainId"`
	DomainName  string `json:"domainName"`
	NodeName    string `json:"nodeName"`
	Hostname    string `json:"hostname"`
	RecordType  string `json:"recordType"`
	TTL         int    `json:"ttl"`
	State       bool   `json:"state"`
	IPv4Address string `json:"ipv4Address,omitempty"`
	IPv6Address string `json:"ipv6Address,omitempty"`
	Host        string `json:"host,omitempty"`
	TextData    string `json:"textData,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

type dynuRecordList struct {
	DNSRecords []dynuRecord `json:"dnsRecords"`
}

// dynuRecordBody is the request body for creating or updating a record.
type dynuRecordBody struct {
	NodeName    string `json:"nodeName"`
	RecordType  string `json:"recordType"`
	TTL         int    `json:"ttl,omitempty"`
	State       bool   `json:"state"`
	IPv4Address string `json:"ipv4Address,omitempty"`
	IPv6Address string `json:"ipv6Address,omitempty"`
	Host        string `json:"host,omitempty"`
	TextData    string `json:"textData,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

// --- HTTP helpers ---

// statusError maps a non-2xx Dynu response to a domain sentinel.
// Transport failures and 5xx responses map to ErrUnavailable so callers
// can tell "the API is down" apart from "the resource does not exist".
func statusError(status int, exc dynuException) error {
	msg := exc.Message
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, msg)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
	case status >= 500:
		return fmt.Errorf("%w: dynu returned %d: %s", domain.ErrUnavailable, status, msg)
	}

	// Dynu reports some argument errors with their own type field.
	if strings.Contains(strings.ToLower(exc.Type), "argument") &&
		strings.Contains(strings.ToLower(msg), "exist") {
		return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
	}

	return fmt.Errorf("dynu: unexpected status %d: %s", status, msg)
}

// doJSON performs an authenticated request against the Dynu API and decodes
// the response into out when provided.
func (d *DynuProvider) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("dynu: failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("dynu: failed to build request: %w", err)
	}
	req.Header.Set("API-Key", d.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var exc dynuException
		_ = json.NewDecoder(resp.Body).Decode(&exc)
		return statusError(resp.StatusCode, exc)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("dynu: failed to decode response: %w", err)
		}
	}
	return nil
}

// --- Zone lookup ---

// getDomainID resolves a zone name to its Dynu domain ID. The comparison is
// case-insensitive. A zone absent from the account maps to ErrZoneNotFound,
// never to a transport error.
func (d *DynuProvider) getDomainID(ctx context.Context, domainName string) (int64, error) {
	var out dynuDomainList
	if err := d.doJSON(ctx, http.MethodGet, "/dns", nil, &out); err != nil {
		return 0, fmt.Errorf("failed to look up zone for %q: %w", domainName, err)
	}

	for _, z := range out.Domains {
		if strings.EqualFold(z.Name, domainName) {
			return z.ID, nil
		}
	}
	return 0, fmt.Errorf("zone for %q: %w", domainName, domain.ErrZoneNotFound)
}

// --- Provider implementation ---

// ListDomains returns all zones in the Dynu account.
func (d *DynuProvider) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	var out dynuDomainList
	if err := d.doJSON(ctx, http.MethodGet, "/dns", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	domains := make([]domain.Domain, 0, len(out.Domains))
	for _, z := range out.Domains {
		domains = append(domains, domain.Domain{
			ID:         strconv.FormatInt(z.ID, 10),
			Name:       z.Name,
			Status:     z.State,
			CreateDate: z.CreatedOn,
		})
	}
	return domains, nil
}

// ListRecords returns all DNS records for the given zone.
func (d *DynuProvider) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	domainID, err := d.getDomainID(ctx, domainName)
	if err != nil {
		return nil, err
	}

	var out dynuRecordList
	path := fmt.Sprintf("/dns/%d/record", domainID)
	if err := d.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list records for %q: %w", domainName, err)
	}

	records := make([]domain.Record, 0, len(out.DNSRecords))
	for _, r := range out.DNSRecords {
		records = append(records, dynuToDomainRecord(domainName, r))
	}
	return records, nil
}

// GetRecord returns a single DNS record by its ID.
func (d *DynuProvider) GetRecord(ctx context.Context, domainName string, id string) (*domain.Record, error) {
	domainID, err := d.getDomainID(ctx, domainName)
	if err != nil {
		return nil, err
	}

	var out dynuRecord
	path := fmt.Sprintf("/dns/%d/record/%s", domainID, id)
	if err := d.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get record %q for %q: %w", id, domainName, err)
	}

	rec := dynuToDomainRecord(domainName, out)
	return &rec, nil
}

// CreateRecord creates a new DNS record and returns the created record.
func (d *DynuProvider) CreateRecord(ctx context.Context, domainName string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	domainID, err := d.getDomainID(ctx, domainName)
	if err != nil {
		return nil, err
	}

	body, err := recordBody(opts.Name, opts.Type, opts.Content, opts.TTL, opts.Priority)
	if err != nil {
		return nil, err
	}

	var out dynuRecord
	path := fmt.Sprintf("/dns/%d/record", domainID)
	if err := d.doJSON(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, fmt.Errorf("failed to create record for %q: %w", domainName, err)
	}

	rec := dynuToDomainRecord(domainName, out)
	return &rec, nil
}

// UpdateRecord updates an existing DNS record by its ID.
// Dynu updates records with a POST to the record path.
func (d *DynuProvider) UpdateRecord(ctx context.Context, domainName string, id string, opts domain.UpdateRecordOpts) error {
	domainID, err := d.getDomainID(ctx, domainName)
	if err != nil {
		return err
	}

	body, err := recordBody(opts.Name, opts.Type, opts.Content, opts.TTL, opts.Priority)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/dns/%d/record/%s", domainID, id)
	if err := d.doJSON(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("failed to update record %q for %q: %w", id, domainName, err)
	}
	return nil
}

// DeleteRecord deletes a DNS record by its ID.
func (d *DynuProvider) DeleteRecord(ctx context.Context, domainName string, id string) error {
	domainID, err := d.getDomainID(ctx, domainName)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/dns/%d/record/%s", domainID, id)
	if err := d.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete record %q for %q: %w", id, domainName, err)
	}
	return nil
}

// --- Conversion helpers ---

// recordBody builds the Dynu request body for a record, placing the content
// in the field the record type requires.
func recordBody(name string, rtype domain.RecordType, content string, ttl, priority int) (dynuRecordBody, error) {
	body := dynuRecordBody{
		NodeName:   name,
		RecordType: string(rtype),
		TTL:        ttl,
		State:      true,
		Priority:   priority,
	}

	switch rtype {
	case domain.RecordTypeA:
		body.IPv4Address = content
	case domain.RecordTypeAAAA:
		body.IPv6Address = content
	case domain.RecordTypeCNAME, domain.RecordTypeNS, domain.RecordTypeMX:
		body.Host = content
	case domain.RecordTypeTXT, domain.RecordTypeSPF:
		body.TextData = content
	default:
		return dynuRecordBody{}, fmt.Errorf("dynu: unsupported record type %q", rtype)
	}
	return body, nil
}

// dynuToDomainRecord converts a Dynu API record to a domain.Record.
func dynuToDomainRecord(domainName string, r dynuRecord) domain.Record {
	var content string
	switch domain.RecordType(r.RecordType) {
	case domain.RecordTypeA:
		content = r.IPv4Address
	case domain.RecordTypeAAAA:
		content = r.IPv6Address
	case domain.RecordTypeCNAME, domain.RecordTypeNS, domain.RecordTypeMX:
		content = r.Host
	default:
		content = r.TextData
	}

	return domain.Record{
		ID:       strconv.FormatInt(r.ID, 10),
		Domain:   domainName,
		Name:     r.NodeName,
		Type:     domain.RecordType(r.RecordType),
		Content:  content,
		TTL:      r.TTL,
		Priority: r.Priority,
		Enabled:  r.State,
	}
}
