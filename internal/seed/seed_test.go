package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHierarchy(t *testing.T) {
	data := []byte(`
zones:
  - name: North Zone
    code: NZ
    dilas:
      - name: River Dila
        code: NZ-RD
        muqams:
          - name: Harbor Muqam
            code: NZ-RD-HM
            jamaats:
              - name: East Jamaat
                code: NZ-RD-HM-EJ
              - name: West Jamaat
                code: NZ-RD-HM-WJ
`)

	f, err := Parse(data)
	assert.NoError(t, err)
	assert.Len(t, f.Zones, 1)
	assert.Equal(t, "NZ", f.Zones[0].Code)
	assert.Len(t, f.Zones[0].Dilas, 1)
	assert.Len(t, f.Zones[0].Dilas[0].Muqams, 1)
	assert.Len(t, f.Zones[0].Dilas[0].Muqams[0].Jamaats, 2)
	assert.Equal(t, "NZ-RD-HM-WJ", f.Zones[0].Dilas[0].Muqams[0].Jamaats[1].Code)
}

func TestParseHierarchyRejectsMissingCode(t *testing.T) {
	data := []byte(`
zones:
  - name: North Zone
    code: NZ
    dilas:
      - name: River Dila
`)

	_, err := Parse(data)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dila")
}

func TestParseHierarchyRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("zones: {not: [valid"))
	assert.Error(t, err)
}
