package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		companyID *uint
		seeAll    bool
		fallback  uint
		wantID    uint
		wantAll   bool
	}{
		{name: "explicit company", companyID: uintPtr(3), wantID: 3},
		{name: "missing company falls back to default", companyID: nil, wantID: 1},
		{name: "zero company falls back to default", companyID: uintPtr(0), wantID: 1},
		{name: "missing company uses configured fallback", companyID: nil, fallback: 7, wantID: 7},
		{name: "privileged caller keeps company", companyID: uintPtr(5), seeAll: true, wantID: 5, wantAll: true},
		{name: "privileged caller without company", companyID: nil, seeAll: true, wantID: 1, wantAll: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Resolve(tt.companyID, tt.seeAll, tt.fallback)
			assert.True(t, s.Valid())
			assert.Equal(t, tt.wantID, s.CompanyID())
			assert.Equal(t, tt.wantAll, s.SeesAll())
		})
	}
}

func TestAllows(t *testing.T) {
	company := ForCompany(3)
	assert.True(t, company.Allows(3))
	assert.False(t, company.Allows(1))
	assert.False(t, company.Allows(5))

	global := Global(3)
	assert.True(t, global.Allows(1))
	assert.True(t, global.Allows(5))
}

func TestZeroScopeIsClosed(t *testing.T) {
	var s Scope
	assert.False(t, s.Valid())
	assert.False(t, s.SeesAll())
	assert.False(t, s.Allows(0))
	assert.False(t, s.Allows(1))
}

func TestString(t *testing.T) {
	assert.Equal(t, "company=3", ForCompany(3).String())
	assert.Equal(t, "company=1 (all companies)", Global(1).String())
}
