package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crab/internal/core/domain"
)

func TestToolchainMissingTools(t *testing.T) {
	tests := []struct {
		name string
		tc   domain.Toolchain
		want []string
	}{
		{
			name: "wasm-pack alone is enough",
			tc:   domain.Toolchain{HasWasmPack: true},
			want: nil,
		},
		{
			name: "cargo plus bindgen is enough",
			tc:   domain.Toolchain{HasCargo: true, HasWasmBindgen: true},
			want: nil,
		},
		{
			name: "cargo without bindgen needs wasm-pack",
			tc:   domain.Toolchain{HasCargo: true},
			want: []string{"wasm-pack"},
		},
		{
			name: "bindgen without cargo needs wasm-pack",
			tc:   domain.Toolchain{HasWasmBindgen: true},
			want: []string{"wasm-pack"},
		},
		{
			name: "nothing installed",
			tc:   domain.Toolchain{},
			want: []string{"wasm-pack", "cargo", "wasm-bindgen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tc.MissingTools())
		})
	}
}
