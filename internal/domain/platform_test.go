package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformNameKnownIDs(t *testing.T) {
	tests := []struct {
		id   PlatformID
		want string
	}{
		{id: "656f437c824eaca2136f3f2f", want: "VIU"},
		{id: "65753c6cabdf18dd6d8956f3", want: "Prime"},
		{id: "65841e7dac3c984ca6be467d", want: "YouTube"},
		{id: "658845d3a844488985ebd8b8", want: "Canva"},
		{id: "658848f7b81ca4d59cccef96", want: "iQiyi"},
		{id: "659ed394610988d54ed1fbd5", want: "WeTV"},
		{id: "65b87e09146660dbd825f3d7", want: "HBO Max"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformName(tt.id))
		})
	}
}

func TestPlatformNameUnknownIDFallsBack(t *testing.T) {
	assert.Equal(t, PlatformFallbackLabel, PlatformName("unknown-xyz"))
	assert.Equal(t, PlatformFallbackLabel, PlatformName(""))
}

func TestPlatformCredentialKind(t *testing.T) {
	assert.Equal(t, CredentialLink, PlatformCredentialKind("658845d3a844488985ebd8b8"))
	assert.Equal(t, CredentialScreenPIN, PlatformCredentialKind("65753c6cabdf18dd6d8956f3"))
	assert.Equal(t, CredentialEmailPassword, PlatformCredentialKind("656f437c824eaca2136f3f2f"))
	assert.Equal(t, CredentialEmailPassword, PlatformCredentialKind("unknown-xyz"))
}
