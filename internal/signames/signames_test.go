package signames

import (
	"errors"
	"syscall"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want syscall.Signal
	}{
		{"SEGV", syscall.SIGSEGV},
		{"SIGSEGV", syscall.SIGSEGV},
		{"sigsegv", syscall.SIGSEGV},
		{" SIGBUS ", syscall.SIGBUS},
		{"Fpe", syscall.SIGFPE},
		{"ill", syscall.SIGILL},
		{"TERM", syscall.SIGTERM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("NOPE")
	if err == nil {
		t.Fatal("Lookup(NOPE) expected error, got nil")
	}
	if !errors.Is(err, ErrUnknownSignal) {
		t.Errorf("error = %v, want ErrUnknownSignal", err)
	}
}

func TestName(t *testing.T) {
	if got := Name(syscall.SIGSEGV); got != "SEGV" {
		t.Errorf("Name(SIGSEGV) = %q, want SEGV", got)
	}
	if got := Name(syscall.Signal(250)); got != "250" {
		t.Errorf("Name(250) = %q, want 250", got)
	}
}

func TestLookupName_Roundtrip(t *testing.T) {
	for name, sig := range signals {
		got, err := Lookup(Name(sig))
		if err != nil {
			t.Errorf("roundtrip %s: %v", name, err)
			continue
		}
		if got != sig {
			t.Errorf("roundtrip %s: got %d, want %d", name, got, sig)
		}
	}
}
