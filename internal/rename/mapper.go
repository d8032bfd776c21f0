package rename

import (
	"sort"

	"github.com/zskulcsar/code-duplication-scanner/internal/index"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// maxProbesWithoutProgress bounds how many candidate tokens Build will skip
// over colliding identifiers before giving up; real projects never approach
// this, it only guards against a logic bug turning into an infinite loop.
const maxProbesWithoutProgress = 1_000_000

// Mapper builds a RenameMap from a ProjectIndex.
type Mapper struct{}

// NewMapper constructs a Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Build computes the deterministic global RenameMap for idx.
func (m *Mapper) Build(idx *index.ProjectIndex) (*RenameMap, error) {
	domain := candidateDomain(idx)
	existing := existingIdentifiers(idx)
	declared := declaredNames(idx)

	result := &RenameMap{
		Mapping:    make(map[string]string, len(domain)),
		Provenance: make(map[string]symbol.Provenance, len(domain)),
	}

	emitted := make(map[string]struct{}, len(domain))
	next := 0
	probesSinceProgress := 0

	for _, name := range domain {
		var token string
		for {
			if probesSinceProgress > maxProbesWithoutProgress {
				return nil, ErrTokenExhausted
			}
			candidate := tokenAt(next)
			next++
			if existing[candidate] || isKeyword(candidate) {
				probesSinceProgress++
				continue
			}
			if _, used := emitted[candidate]; used {
				probesSinceProgress++
				continue
			}
			token = candidate
			probesSinceProgress = 0
			break
		}

		emitted[token] = struct{}{}
		result.Mapping[name] = token
		if declared[name] {
			result.Provenance[name] = symbol.ProvenanceResolvedLocal
		} else {
			result.Provenance[name] = symbol.ProvenanceLikelyLocal
		}
	}

	return result, nil
}

// candidateDomain computes the sorted union of rename candidates and
// attribute-owner names, excluding dunder names, external names, and target
// -language keywords.
func candidateDomain(idx *index.ProjectIndex) []string {
	seen := make(map[string]struct{}, len(idx.RenameCandidates)+len(idx.AttributeOwners))
	for name := range idx.RenameCandidates {
		seen[name] = struct{}{}
	}
	for name := range idx.AttributeOwners {
		seen[name] = struct{}{}
	}

	domain := make([]string, 0, len(seen))
	for name := range seen {
		if symbol.IsDunder(name) {
			continue
		}
		if _, external := idx.ExternalNames[name]; external {
			continue
		}
		if isKeyword(name) {
			continue
		}
		domain = append(domain, name)
	}
	sort.Strings(domain)
	return domain
}

// existingIdentifiers is every name the index records for the project:
// declarations, import bindings, external names, and rename candidates. A
// generated token never collides with one of these. Names that are only
// read and never declared or imported there (builtins such as id, or
// attributes of external objects) are not in this set.
func existingIdentifiers(idx *index.ProjectIndex) map[string]bool {
	existing := make(map[string]bool)
	for key := range idx.Declarations {
		existing[key.Name] = true
	}
	for _, file := range idx.Imports {
		for name := range file {
			existing[name] = true
		}
	}
	for name := range idx.ExternalNames {
		existing[name] = true
	}
	for name := range idx.RenameCandidates {
		existing[name] = true
	}
	return existing
}

// declaredNames is every name that appears as an actual declaration site
// (not merely an attribute-owner inference) somewhere in the project; it
// distinguishes resolved_local provenance from likely_local.
func declaredNames(idx *index.ProjectIndex) map[string]bool {
	declared := make(map[string]bool, len(idx.Declarations))
	for key := range idx.Declarations {
		declared[key.Name] = true
	}
	return declared
}

// tokenAt returns the i-th token (0-based) of the deterministic generator
// aa, ab, …, az, ba, …, zz, aaa, aab, …, extending to a longer token only
// once the shorter length is exhausted.
func tokenAt(i int) string {
	length := 2
	for {
		capacity := 1
		for k := 0; k < length; k++ {
			capacity *= 26
		}
		if i < capacity {
			return encodeBase26(i, length)
		}
		i -= capacity
		length++
	}
}

func encodeBase26(i, length int) string {
	buf := make([]byte, length)
	for pos := length - 1; pos >= 0; pos-- {
		buf[pos] = byte('a' + i%26)
		i /= 26
	}
	return string(buf)
}
