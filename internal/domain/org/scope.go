package org

import "gorm.io/gorm"

// Scope is the set of organizational entities a caller may see or act upon.
// A national caller is unrestricted; everyone else carries the explicit id
// sets reachable from their anchor. The zero value is the empty scope, which
// matches nothing.
type Scope struct {
	Unrestricted bool
	ZoneIDs      []uint
	DilaIDs      []uint
	MuqamIDs     []uint
	JamaatIDs    []uint
}

// Empty reports whether the scope matches nothing. A caller whose anchor id
// is missing resolves to the empty scope, never to unrestricted.
func (s Scope) Empty() bool {
	return !s.Unrestricted &&
		len(s.ZoneIDs) == 0 && len(s.DilaIDs) == 0 &&
		len(s.MuqamIDs) == 0 && len(s.JamaatIDs) == 0
}

// Apply intersects a query over rows carrying muqam_id/dila_id/zone_id
// columns with the scope. Every list or search over submissions and members
// goes through here before returning data.
func (s Scope) Apply(q *gorm.DB) *gorm.DB {
	if s.Unrestricted {
		return q
	}
	if s.Empty() {
		return q.Where("1 = 0")
	}

	cond := q.Session(&gorm.Session{NewDB: true})
	matched := false
	if len(s.MuqamIDs) > 0 {
		cond = cond.Where("muqam_id IN ?", s.MuqamIDs)
		matched = true
	}
	if len(s.DilaIDs) > 0 {
		if matched {
			cond = cond.Or("dila_id IN ?", s.DilaIDs)
		} else {
			cond = cond.Where("dila_id IN ?", s.DilaIDs)
		}
		matched = true
	}
	if len(s.ZoneIDs) > 0 {
		if matched {
			cond = cond.Or("zone_id IN ?", s.ZoneIDs)
		} else {
			cond = cond.Where("zone_id IN ?", s.ZoneIDs)
		}
	}
	return q.Where(cond)
}

// Contains reports whether a row anchored at the given ids falls inside the
// scope. Used for single-item authorization where Apply is not in play.
func (s Scope) Contains(muqamID, dilaID, zoneID *uint) bool {
	if s.Unrestricted {
		return true
	}
	if muqamID != nil && containsID(s.MuqamIDs, *muqamID) {
		return true
	}
	if dilaID != nil && containsID(s.DilaIDs, *dilaID) {
		return true
	}
	if zoneID != nil && containsID(s.ZoneIDs, *zoneID) {
		return true
	}
	return false
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
