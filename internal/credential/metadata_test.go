package credential

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenURIBase64(t *testing.T) {
	t.Parallel()

	doc := `{
		"name": "Age Verification Credential",
		"description": "Holder passed a confidential age check.",
		"image": "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/badge.svg",
		"attributes": [{"trait_type": "Verified", "value": true}]
	}`
	uri := "data:application/json;base64," + base64.StdEncoding.EncodeToString([]byte(doc))

	meta, err := ParseTokenURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "Age Verification Credential", meta.Name)
	assert.Equal(t, "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/badge.svg", meta.Image)
	require.Len(t, meta.Attributes, 1)
	assert.Equal(t, "Verified", meta.Attributes[0].TraitType)
	assert.Equal(t, true, meta.Attributes[0].Value)
}

func TestParseTokenURIPlainJSON(t *testing.T) {
	t.Parallel()

	uri := `data:application/json,{"name":"Age%20Verification%20Credential","image":"https://example.com/badge.svg"}`
	meta, err := ParseTokenURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "Age Verification Credential", meta.Name)
	// Non-ipfs images pass through untouched.
	assert.Equal(t, "https://example.com/badge.svg", meta.Image)
}

func TestParseTokenURIRejectsOtherSchemes(t *testing.T) {
	t.Parallel()

	_, err := ParseTokenURI("https://example.com/metadata/1.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported token uri scheme")
}

func TestParseTokenURIBadBase64(t *testing.T) {
	t.Parallel()

	_, err := ParseTokenURI("data:application/json;base64,%%%not-base64%%%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode base64 token uri")
}

func TestParseTokenURIBadJSON(t *testing.T) {
	t.Parallel()

	uri := "data:application/json;base64," + base64.StdEncoding.EncodeToString([]byte("{not json"))
	_, err := ParseTokenURI(uri)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode metadata json")
}
