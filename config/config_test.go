package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// validParams mirrors Load's embedded-defaults step without touching
// the filesystem, so Validate can be tested in isolation.
func validParams() *Params {
	p := &Params{}
	if err := yaml.Unmarshal(defaultsYAML, p); err != nil {
		panic(err)
	}
	return p
}

func TestEmbeddedDefaultsAreValid(t *testing.T) {
	p := validParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("embedded defaults.yaml should be valid, got: %v", err)
	}
}

func TestValidateRejectsNonPositiveSizeX(t *testing.T) {
	p := validParams()
	p.SizeX = 0
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for size_x=0")
	}
}

func TestValidateRejectsOvercrowdedPopulation(t *testing.T) {
	p := validParams()
	p.SizeX, p.SizeY = 10, 10
	p.Population = 95 // >= 0.9 * 100
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for population exceeding liveness threshold")
	}
}

func TestValidateRejectsOutOfRangeRate(t *testing.T) {
	p := validParams()
	p.PointMutationRate = 1.5
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for point_mutation_rate > 1")
	}
}

func TestLoadWithNoPathReturnsDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if p.SizeX != 128 || p.SizeY != 128 {
		t.Fatalf("Load(\"\") = %+v, want embedded defaults", p)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	global = nil
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Cfg() before Init()")
		}
	}()
	Cfg()
}

func TestMustInitLoadsDefaults(t *testing.T) {
	global = nil
	MustInit("")
	if Cfg().SizeX != 128 {
		t.Fatalf("Cfg().SizeX = %d, want 128", Cfg().SizeX)
	}
}
