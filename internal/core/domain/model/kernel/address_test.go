package kernel_test

import (
	"strings"
	"testing"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		city    string
		wantErr error
	}{
		{name: "valid", line: "12 rue des Lilas", city: "Bordeaux"},
		{name: "missing line", line: "  ", city: "Bordeaux", wantErr: errs.ErrValueIsRequired},
		{name: "short line", line: "12 r", city: "Bordeaux", wantErr: errs.ErrValueIsInvalid},
		{name: "missing city", line: "12 rue des Lilas", city: "", wantErr: errs.ErrValueIsRequired},
		{name: "short city", line: "12 rue des Lilas", city: "B", wantErr: errs.ErrValueIsOutOfRange},
		{name: "long city", line: "12 rue des Lilas", city: strings.Repeat("x", 121), wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := kernel.NewAddress(tt.line, tt.city)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, addr.Validate())
			assert.Equal(t, tt.line, addr.Line())
			assert.Equal(t, tt.city, addr.City())
		})
	}
}

func TestAddress(t *testing.T) {
	t.Run("should trim input", func(t *testing.T) {
		addr, err := kernel.NewAddress("  12 rue des Lilas ", " Bordeaux ")

		require.NoError(t, err)
		assert.Equal(t, "12 rue des Lilas, Bordeaux", addr.String())
	})

	t.Run("should compare cities case-insensitively", func(t *testing.T) {
		a, _ := kernel.NewAddress("12 rue des Lilas", "Bordeaux")
		b, _ := kernel.NewAddress("12 rue des Lilas", "BORDEAUX")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var addr kernel.Address

		require.ErrorIs(t, addr.Validate(), kernel.ErrAddressIsNotConstructed)
	})
}
