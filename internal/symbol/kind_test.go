package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindModule, "module"},
		{KindClass, "class"},
		{KindFunction, "function"},
		{KindMethod, "method"},
		{KindParameter, "parameter"},
		{KindLocal, "local"},
		{KindClassAttribute, "class_attribute"},
		{KindImportAlias, "import_alias"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestIsDunder(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"__init__", true},
		{"__repr__", true},
		{"____", true},
		{"___", false},
		{"__init", false},
		{"init__", false},
		{"draw", false},
		{"", false},
		{"_private", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDunder(tt.name))
		})
	}
}

func TestVerdictAndProvenanceString(t *testing.T) {
	assert.Equal(t, "project_local", VerdictProjectLocal.String())
	assert.Equal(t, "external", VerdictExternal.String())
	assert.Equal(t, "unresolved", VerdictUnresolved.String())

	assert.Equal(t, "resolved_local", ProvenanceResolvedLocal.String())
	assert.Equal(t, "likely_local", ProvenanceLikelyLocal.String())
	assert.Equal(t, "external_certain", ProvenanceExternalCertain.String())

	assert.Equal(t, "get", DynamicGet.String())
	assert.Equal(t, "set", DynamicSet.String())
	assert.Equal(t, "has", DynamicHas.String())
}
