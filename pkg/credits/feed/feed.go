// Package feed loads the consumption dataset the dashboard renders.
//
// A feed bundles three things: raw meter events keyed by date, the alert
// set for the org, and the org identifiers offered by the org picker. An
// embedded fixture ships with the binary so the dashboard works with no
// arguments; an on-disk feed in the same YAML shape can replace it.
package feed

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jamesainslie/creditscope/pkg/credits/types"
)

//go:embed fixture.yaml
var fixtureYAML []byte

// Feed is a complete input dataset for one org.
type Feed struct {
	OrgIDs []string           `yaml:"org_ids" json:"org_ids"`
	Alerts []types.Alert      `yaml:"alerts" json:"alerts"`
	Events types.EventsByDate `yaml:"events" json:"events"`
}

// EventsFor returns the meter events recorded for a date key.
// Dates with no activity yield an empty set.
func (f *Feed) EventsFor(date string) types.MeterEvents {
	if f == nil || f.Events == nil {
		return types.MeterEvents{}
	}
	return f.Events[date]
}

// Decode reads a YAML feed from r.
func Decode(r io.Reader) (*Feed, error) {
	var f Feed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return &f, nil
}

// Load reads a YAML feed from a file.
func Load(path string) (*Feed, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	defer func() { _ = fh.Close() }()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("load feed %s: %w", path, err)
	}
	return f, nil
}

// Default returns the embedded fixture dataset.
func Default() *Feed {
	var f Feed
	if err := yaml.Unmarshal(fixtureYAML, &f); err != nil {
		// The fixture is compiled into the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded fixture: %v", err))
	}
	return &f
}
