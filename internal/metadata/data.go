package metadata

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, metrics, reporting).

	Rules:
	 - ErrorCause MUST NOT influence control flow.
	 - ErrorCause MUST NOT be used for retry or fallback decisions.
	 - Packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

  - The failure does not map cleanly to any known category.

# CauseInvalidRequest

  - The request could not be formed (unparseable endpoint, empty lookup term).

# CauseNetworkFailure

  - Transport failure or remote availability (timeouts, DNS, resets, cancellation).

# CauseRemoteRejected

  - The remote answered with a non-2xx status.

# CauseContentInvalid

  - A response arrived but its status metadata or its body could not be used
    (missing status, malformed JSON, wrong field types).

# CauseStorageFailure

  - A snapshot could not be written to disk.
*/
const (
	CauseUnknown ErrorCause = iota
	CauseInvalidRequest
	CauseNetworkFailure
	CauseRemoteRejected
	CauseContentInvalid
	CauseStorageFailure
)

func (c ErrorCause) String() string {
	switch c {
	case CauseInvalidRequest:
		return "invalid_request"
	case CauseNetworkFailure:
		return "network_failure"
	case CauseRemoteRejected:
		return "remote_rejected"
	case CauseContentInvalid:
		return "content_invalid"
	case CauseStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrURL        AttributeKey = "url"
	AttrHost       AttributeKey = "host"
	AttrTerm       AttributeKey = "term"
	AttrCacheKey   AttributeKey = "cache_key"
	AttrHTTPStatus AttributeKey = "http_status"
	AttrMessage    AttributeKey = "message"
	AttrWritePath  AttributeKey = "write_path"
	AttrDigest     AttributeKey = "digest"
)

type ArtifactKind string

const (
	ArtifactSnapshot ArtifactKind = "snapshot"
)
