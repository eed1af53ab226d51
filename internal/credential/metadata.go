package credential

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

// Metadata is the ERC-721 style document the contract serves from its token
// URI.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

const (
	base64JSONPrefix = "data:application/json;base64,"
	plainJSONPrefix  = "data:application/json,"
	ipfsGateway      = "https://ipfs.io/ipfs/"
)

// ParseTokenURI decodes an on-chain token URI into metadata. Base64 and plain
// data URIs are handled, ipfs:// images are rewritten to a public gateway so
// clients can render them directly.
func ParseTokenURI(uri string) (*Metadata, error) {
	var raw []byte
	switch {
	case strings.HasPrefix(uri, base64JSONPrefix):
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, base64JSONPrefix))
		if err != nil {
			return nil, errors.Wrap(err, "decode base64 token uri")
		}
		raw = decoded
	case strings.HasPrefix(uri, plainJSONPrefix):
		unescaped, err := url.PathUnescape(strings.TrimPrefix(uri, plainJSONPrefix))
		if err != nil {
			return nil, errors.Wrap(err, "unescape token uri")
		}
		raw = []byte(unescaped)
	default:
		return nil, errors.New("unsupported token uri scheme")
	}

	meta := Metadata{}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, errors.Wrap(err, "decode metadata json")
	}
	meta.Image = rewriteIPFS(meta.Image)
	return &meta, nil
}

func rewriteIPFS(image string) string {
	if strings.HasPrefix(image, "ipfs://") {
		return ipfsGateway + strings.TrimPrefix(image, "ipfs://")
	}
	return image
}
