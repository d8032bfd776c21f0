package symbol

// Verdict is the ownership classification the resolver assigns to a usage
// site: does it refer to something declared inside the project, something
// external, or something static evidence cannot settle either way.
type Verdict int

const (
	VerdictUnresolved Verdict = iota
	VerdictProjectLocal
	VerdictExternal
)

func (v Verdict) String() string {
	switch v {
	case VerdictProjectLocal:
		return "project_local"
	case VerdictExternal:
		return "external"
	default:
		return "unresolved"
	}
}

// Provenance records why a rename-map entry exists: a declaration the
// indexer found directly, or a name the resolver only inferred was local.
type Provenance int

const (
	ProvenanceUnknown Provenance = iota
	ProvenanceResolvedLocal
	ProvenanceLikelyLocal
	ProvenanceExternalCertain
)

func (p Provenance) String() string {
	switch p {
	case ProvenanceResolvedLocal:
		return "resolved_local"
	case ProvenanceLikelyLocal:
		return "likely_local"
	case ProvenanceExternalCertain:
		return "external_certain"
	default:
		return "unknown"
	}
}

// DynamicSiteKind distinguishes the three reflective accessors the indexer
// and rewriter treat specially.
type DynamicSiteKind int

const (
	DynamicGet DynamicSiteKind = iota
	DynamicSet
	DynamicHas
)

func (k DynamicSiteKind) String() string {
	switch k {
	case DynamicGet:
		return "get"
	case DynamicSet:
		return "set"
	case DynamicHas:
		return "has"
	default:
		return "unknown"
	}
}
