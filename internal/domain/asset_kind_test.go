package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssetKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AssetKind
		wantErr bool
	}{
		{name: "exact stock", input: "STOCK", want: AssetKindStock},
		{name: "lower case bond", input: "bond", want: AssetKindBond},
		{name: "padded cash", input: "  Cash ", want: AssetKindCash},
		{name: "commodity", input: "COMMODITY", want: AssetKindCommodity},
		{name: "crypto with underscore", input: "CRYPTO_CURRENCY", want: AssetKindCryptoCurrency},
		{name: "crypto with dash", input: "crypto-currency", want: AssetKindCryptoCurrency},
		{name: "private equity with space", input: "private equity", want: AssetKindPrivateEquity},
		{name: "real estate", input: "REAL_ESTATE", want: AssetKindRealEstate},
		{name: "empty string should fail", input: "", wantErr: true},
		{name: "unknown kind should fail", input: "ART", wantErr: true},
		{name: "partial match should fail", input: "CRYPTO", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssetKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownAssetKind))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssetKinds_ClosedSet(t *testing.T) {
	kinds := AssetKinds()

	assert.Equal(t, []AssetKind{
		AssetKindStock,
		AssetKindBond,
		AssetKindCash,
		AssetKindCommodity,
		AssetKindCryptoCurrency,
		AssetKindPrivateEquity,
		AssetKindRealEstate,
	}, kinds)

	for _, kind := range kinds {
		assert.True(t, kind.Valid(), "%s should be valid", kind)
	}
	assert.False(t, AssetKind("").Valid())
	assert.False(t, AssetKind("stock").Valid(), "only the canonical spelling is a valid kind")

	// Mutating the returned slice must not leak into the package
	kinds[0] = "BROKEN"
	assert.Equal(t, AssetKindStock, AssetKinds()[0])
}

func TestAssetKind_JSON(t *testing.T) {
	var payload struct {
		Kind AssetKind `json:"kind"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"kind":"real-estate"}`), &payload))
	assert.Equal(t, AssetKindRealEstate, payload.Kind)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"REAL_ESTATE"}`, string(out))

	err = json.Unmarshal([]byte(`{"kind":"yacht"}`), &payload)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAssetKind))

	payload.Kind = "yacht"
	_, err = json.Marshal(payload)
	assert.Error(t, err)
}
