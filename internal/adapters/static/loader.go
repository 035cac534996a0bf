// Package static loads the lookup tables compiled into the binary.
package static

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	"steadyday.app/internal/core/historical"
	"steadyday.app/internal/core/region"
	"steadyday.app/pkg/errors"
)

const hoursPerDay = 24

//go:embed data/*.yaml
var dataFS embed.FS

type regionsFile struct {
	Regions []region.Group `yaml:"regions"`
}

type historicalFile struct {
	ReferenceYear int `yaml:"reference_year"`
	PSI           []struct {
		Month               int     `yaml:"month"`
		TwentyFourHourlyAvg float64 `yaml:"twenty_four_hourly_avg"`
	} `yaml:"psi"`
	UV []struct {
		Month  int   `yaml:"month"`
		Hourly []int `yaml:"hourly"`
	} `yaml:"uv"`
}

// LoadRegionTable returns the bundled ordered region table.
func LoadRegionTable() ([]region.Group, error) {
	raw, err := dataFS.ReadFile("data/regions.yaml")
	if err != nil {
		return nil, errors.NewConfigurationError("failed to read region table", err)
	}
	return ParseRegionTable(raw)
}

// ParseRegionTable decodes a region table document.
func ParseRegionTable(raw []byte) ([]region.Group, error) {
	var file regionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.NewConfigurationError("failed to parse region table", err)
	}
	if len(file.Regions) == 0 {
		return nil, errors.NewConfigurationError("region table is empty", nil)
	}
	for i, g := range file.Regions {
		if g.Region == "" {
			return nil, errors.NewConfigurationError(fmt.Sprintf("region table entry %d has no region", i), nil)
		}
	}
	return file.Regions, nil
}

// LoadResolver builds a resolver over the bundled region table.
func LoadResolver() (*region.Resolver, error) {
	groups, err := LoadRegionTable()
	if err != nil {
		return nil, err
	}
	return region.NewResolver(groups), nil
}

// LoadHistoricalData returns the bundled reference averages.
func LoadHistoricalData() (historical.Data, error) {
	raw, err := dataFS.ReadFile("data/historical.yaml")
	if err != nil {
		return historical.Data{}, errors.NewConfigurationError("failed to read historical data", err)
	}
	return ParseHistoricalData(raw)
}

// ParseHistoricalData decodes and checks a historical averages document.
func ParseHistoricalData(raw []byte) (historical.Data, error) {
	var file historicalFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return historical.Data{}, errors.NewConfigurationError("failed to parse historical data", err)
	}

	data := historical.Data{
		PSIMonthlyAverage: make(map[time.Month]float64, len(file.PSI)),
		UVHourlyAverage:   make(map[time.Month][]int, len(file.UV)),
	}
	for _, p := range file.PSI {
		if p.Month < 1 || p.Month > 12 {
			return historical.Data{}, errors.NewConfigurationError(fmt.Sprintf("invalid PSI month %d", p.Month), nil)
		}
		data.PSIMonthlyAverage[time.Month(p.Month)] = p.TwentyFourHourlyAvg
	}
	for _, u := range file.UV {
		if u.Month < 1 || u.Month > 12 {
			return historical.Data{}, errors.NewConfigurationError(fmt.Sprintf("invalid UV month %d", u.Month), nil)
		}
		if len(u.Hourly) != hoursPerDay {
			return historical.Data{}, errors.NewConfigurationError(
				fmt.Sprintf("UV month %d has %d hourly values, want %d", u.Month, len(u.Hourly), hoursPerDay), nil)
		}
		data.UVHourlyAverage[time.Month(u.Month)] = u.Hourly
	}
	return data, nil
}
