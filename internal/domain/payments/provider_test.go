package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCountry(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"US", ProviderStripe},
		{"us", ProviderStripe},
		{"DE", ProviderStripe},
		{" gb ", ProviderStripe},
		{"NG", ProviderPaystack},
		{"KE", ProviderPaystack},
		{"ng", ProviderPaystack},
		{"BR", ProviderNone},
		{"XX", ProviderNone},
		{"", ProviderNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCountry(tt.code), "code %q", tt.code)
	}
}

func TestValidProvider(t *testing.T) {
	assert.True(t, ValidProvider(ProviderStripe))
	assert.True(t, ValidProvider(ProviderPaystack))
	assert.True(t, ValidProvider(ProviderNone))
	assert.False(t, ValidProvider("square"))
}
