package suite

import "testing"

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithIterations(5), WithWarmup(2))
	if cfg.Iterations != 5 {
		t.Fatalf("iterations = %d, want 5", cfg.Iterations)
	}
	if cfg.Warmup != 2 {
		t.Fatalf("warmup = %d, want 2", cfg.Warmup)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(WithIterations(0), WithWarmup(-1), nil)
	def := DefaultConfig()
	if cfg.Iterations != def.Iterations || cfg.Warmup != def.Warmup {
		t.Fatalf("cfg = %+v, want %+v", cfg, def)
	}
}
