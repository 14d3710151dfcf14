//go:build unit

package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/console"
)

func TestStdinConfirmerConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "should accept yes", input: "y\n", expected: true},
		{name: "should accept the default answer", input: "\n", expected: true},
		{name: "should decline no", input: "No\n", expected: false},
		{name: "should ask again after an unknown answer", input: "maybe\nn\n", expected: false},
		{name: "should decline on closed input", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			var out bytes.Buffer
			confirmer := console.NewStdinConfirmerWithIO(strings.NewReader(tt.input), &out)

			// when
			result, err := confirmer.Confirm("Upgrade Serilog from 1.0.0 -> 2.0.0")

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Contains(t, out.String(), "Upgrade Serilog from 1.0.0 -> 2.0.0 [y/n] (y): ")
		})
	}
}
