package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/status-page/internal/types"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name    string
		company string
		role    string
		want    string
	}{
		{"simple", "Acme Corp", "Engineer", "acme-corp-engineer"},
		{"punctuation collapsed", "acme corp!!", "Engineer", "acme-corp-engineer"},
		{"leading and trailing junk", "  --Acme-- ", "(Engineer)", "acme-engineer"},
		{"digits kept", "Area 51", "Engineer II", "area-51-engineer-ii"},
		{"unicode stripped", "Café", "Diseñador", "caf-dise-ador"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.company, tt.role))
		})
	}
}

func TestBuild_CollisionSuffixes(t *testing.T) {
	tracker := types.TrackerData{
		Active: []types.Role{
			{Company: "Acme Corp", Role: "Engineer"},
			{Company: "acme corp!!", Role: "Engineer"},
		},
		Closed: []types.Role{
			{Company: "Acme/Corp", Role: "Engineer"},
		},
	}

	m := Build(tracker)

	assert.Equal(t, "acme-corp-engineer", m.Lookup("Acme Corp", "Engineer"))
	assert.Equal(t, "acme-corp-engineer-1", m.Lookup("acme corp!!", "Engineer"))
	assert.Equal(t, "acme-corp-engineer-2", m.Lookup("Acme/Corp", "Engineer"))
}

func TestBuild_Deterministic(t *testing.T) {
	tracker := types.TrackerData{
		Active: []types.Role{
			{Company: "Globex", Role: "SRE"},
			{Company: "Initech", Role: "Manager"},
		},
	}

	first := Build(tracker)
	second := Build(tracker)
	assert.Equal(t, first, second)
}

func TestLookup_Unknown(t *testing.T) {
	m := Build(types.TrackerData{})
	assert.Empty(t, m.Lookup("Nobody", "Nothing"))
}
