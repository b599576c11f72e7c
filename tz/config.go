// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tz

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"github.com/cosnicolaou/tzshim/duration"
	"gopkg.in/yaml.v3"
)

// ZoneConfig is the configuration for a single named zone.
type ZoneConfig struct {
	Name   string             `yaml:"name" cmd:"the name of the zone"`
	Type   string             `yaml:"type" cmd:"the type of the zone, one of fixed or cet, defaults to fixed"`
	Offset *duration.Duration `yaml:"offset" cmd:"the offset from UTC for a fixed zone, eg. 05:30:00, -1h"`
	Label  string             `yaml:"label" cmd:"the display name for a fixed zone, defaults to UTC±HH:MM"`
}

// Config is the configuration for a set of named zones.
type Config struct {
	Zones []ZoneConfig `yaml:"zones" cmd:"the zones that are being configured"`
}

// ZoneFactory creates a Zone from its configuration.
type ZoneFactory func(cfg ZoneConfig) (Zone, error)

// AvailableTypes are the zone types that may be specified in a
// configuration file.
var AvailableTypes = map[string]ZoneFactory{
	"fixed": newFixed,
	"cet":   newCET,
}

// Builtin are the zones that are always available.
var Builtin = map[string]Zone{
	"utc": UTC,
	"cet": CET{},
}

func newFixed(cfg ZoneConfig) (Zone, error) {
	if cfg.Offset == nil {
		return nil, fmt.Errorf("zone %q: fixed zones require an offset", cfg.Name)
	}
	if d := cfg.Offset.Abs(); d >= duration.Day {
		return nil, fmt.Errorf("zone %q: offset %v is not less than one day", cfg.Name, cfg.Offset)
	}
	if len(cfg.Label) > 0 {
		return NewNamedOffset(*cfg.Offset, cfg.Label), nil
	}
	return NewOffset(*cfg.Offset), nil
}

func newCET(cfg ZoneConfig) (Zone, error) {
	if cfg.Offset != nil || len(cfg.Label) > 0 {
		return nil, fmt.Errorf("zone %q: cet zones do not accept an offset or label", cfg.Name)
	}
	return CET{}, nil
}

// Zones is a set of named zones.
type Zones struct {
	Config Config
	zones  map[string]Zone
}

// Lookup returns the named zone, configured zones take precedence over
// builtin ones. Names are case insensitive.
func (z Zones) Lookup(name string) (Zone, bool) {
	name = strings.ToLower(name)
	if zone, ok := z.zones[name]; ok {
		return zone, true
	}
	zone, ok := Builtin[name]
	return zone, ok
}

// Names returns the sorted names of all configured and builtin zones.
func (z Zones) Names() []string {
	names := make([]string, 0, len(z.zones)+len(Builtin))
	for n := range z.zones {
		names = append(names, n)
	}
	for n := range Builtin {
		if _, ok := z.zones[n]; !ok {
			names = append(names, n)
		}
	}
	slices.Sort(names)
	return names
}

// ParseConfigFile reads and parses the zone configuration in cfgFile.
func ParseConfigFile(ctx context.Context, cfgFile string) (Zones, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, cfgFile, &cfg); err != nil {
		return Zones{}, err
	}
	return cfg.createZones()
}

// ParseConfig parses the supplied zone configuration.
func ParseConfig(_ context.Context, cfgData []byte) (Zones, error) {
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		return Zones{}, err
	}
	return cfg.createZones()
}

func (cfg Config) createZones() (Zones, error) {
	zones := Zones{
		Config: cfg,
		zones:  map[string]Zone{},
	}
	var errs errors.M
	for _, zc := range cfg.Zones {
		name := strings.ToLower(zc.Name)
		if len(name) == 0 {
			errs.Append(fmt.Errorf("zone with no name"))
			continue
		}
		if _, ok := zones.zones[name]; ok {
			errs.Append(fmt.Errorf("duplicate zone name: %v", zc.Name))
			continue
		}
		typ := zc.Type
		if len(typ) == 0 {
			typ = "fixed"
		}
		factory, ok := AvailableTypes[typ]
		if !ok {
			errs.Append(fmt.Errorf("zone %q: unsupported type: %v", zc.Name, zc.Type))
			continue
		}
		zone, err := factory(zc)
		if err != nil {
			errs.Append(err)
			continue
		}
		zones.zones[name] = zone
	}
	if err := errs.Err(); err != nil {
		return Zones{}, err
	}
	return zones, nil
}
