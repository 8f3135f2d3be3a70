package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "4", "-seed", "9", "-set", "parallel=true", "-set", "chunks = 5", "-material", "water"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scale != 4 || cfg.Seed != 9 || cfg.Material != "water" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	got := cfg.SimConfig()
	if got["parallel"] != "true" || got["chunks"] != "5" || got["seed"] != "9" {
		t.Fatalf("SimConfig = %v", got)
	}
	if s := cfg.Sets.String(); s != "chunks=5,parallel=true" {
		t.Fatalf("Overrides.String = %q", s)
	}
}

func TestOverridesRejectMalformed(t *testing.T) {
	o := Overrides{}
	if err := o.Set("novalue"); err == nil {
		t.Fatal("missing '=' should be rejected")
	}
	if err := o.Set("=5"); err == nil {
		t.Fatal("empty key should be rejected")
	}
}

func TestSeedOverrideWins(t *testing.T) {
	cfg := NewConfig()
	cfg.Sets["seed"] = "77"
	if got := cfg.SimConfig()["seed"]; got != "77" {
		t.Fatalf("seed = %q, want explicit override", got)
	}
}
