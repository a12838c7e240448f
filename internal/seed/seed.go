package seed

import (
	"fmt"
	"log"
	"os"

	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"gopkg.in/yaml.v2"
)

// HierarchyFile is the YAML shape of a zone/dila/muqam/jamaat bootstrap file.
type HierarchyFile struct {
	Zones []ZoneSeed `yaml:"zones"`
}

type ZoneSeed struct {
	Name  string     `yaml:"name"`
	Code  string     `yaml:"code"`
	Dilas []DilaSeed `yaml:"dilas"`
}

type DilaSeed struct {
	Name   string      `yaml:"name"`
	Code   string      `yaml:"code"`
	Muqams []MuqamSeed `yaml:"muqams"`
}

type MuqamSeed struct {
	Name    string       `yaml:"name"`
	Code    string       `yaml:"code"`
	Jamaats []JamaatSeed `yaml:"jamaats"`
}

type JamaatSeed struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// Parse decodes a hierarchy file and rejects empty codes up front so a bad
// file never half-seeds.
func Parse(data []byte) (*HierarchyFile, error) {
	var f HierarchyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing hierarchy file: %w", err)
	}
	for _, z := range f.Zones {
		if z.Code == "" || z.Name == "" {
			return nil, fmt.Errorf("zone %q: name and code are required", z.Name)
		}
		for _, d := range z.Dilas {
			if d.Code == "" || d.Name == "" {
				return nil, fmt.Errorf("dila %q: name and code are required", d.Name)
			}
			for _, m := range d.Muqams {
				if m.Code == "" || m.Name == "" {
					return nil, fmt.Errorf("muqam %q: name and code are required", m.Name)
				}
				for _, j := range m.Jamaats {
					if j.Code == "" || j.Name == "" {
						return nil, fmt.Errorf("jamaat %q: name and code are required", j.Name)
					}
				}
			}
		}
	}
	return &f, nil
}

// HierarchyFromFile seeds the directory from path. It is a no-op when path is
// empty or zones already exist.
func HierarchyFromFile(repos *repository.Repos, path string) error {
	if path == "" {
		return nil
	}

	existing, err := repos.Org.ListZones()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("Hierarchy already seeded, skipping")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading hierarchy file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return err
	}

	return Apply(repos, f)
}

// Apply creates every unit in the file inside one transaction.
func Apply(repos *repository.Repos, f *HierarchyFile) error {
	return repos.ExecTx(func(tx *repository.Repos) error {
		for _, zs := range f.Zones {
			zone := &org.Zone{Name: zs.Name, Code: zs.Code}
			if err := tx.Org.CreateZone(zone); err != nil {
				return err
			}
			for _, ds := range zs.Dilas {
				dila := &org.Dila{ZoneID: zone.ID, Name: ds.Name, Code: ds.Code}
				if err := tx.Org.CreateDila(dila); err != nil {
					return err
				}
				for _, ms := range ds.Muqams {
					muqam := &org.Muqam{DilaID: dila.ID, Name: ms.Name, Code: ms.Code}
					if err := tx.Org.CreateMuqam(muqam); err != nil {
						return err
					}
					for _, js := range ms.Jamaats {
						jamaat := &org.Jamaat{MuqamID: muqam.ID, Name: js.Name, Code: js.Code}
						if err := tx.Org.CreateJamaat(jamaat); err != nil {
							return err
						}
					}
				}
			}
		}
		log.Printf("Seeded %d zone(s) from hierarchy file", len(f.Zones))
		return nil
	})
}
