package signing

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"xhdwallet/internal/domain"
)

// decodePayload renders the payload in its signable form.
//
// none passes the bytes through; base64 strips the transport encoding. For
// msgpack, string and binary values decode to their raw content bytes (so
// the reserved-tag check sees what a verifier would see), while composite
// values are rendered as their JSON document. The same bytes then feed the
// tag check, the schema validation and the signature.
func decodePayload(payload []byte, enc domain.Encoding) ([]byte, error) {
	switch enc {
	case domain.EncodingNone, "":
		return payload, nil

	case domain.EncodingBase64:
		out := make([]byte, base64.StdEncoding.DecodedLen(len(payload)))
		n, err := base64.StdEncoding.Decode(out, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
		}
		return out[:n], nil

	case domain.EncodingMsgpack:
		var v interface{}
		if err := msgpack.Unmarshal(payload, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
		}
		switch inner := v.(type) {
		case string:
			return []byte(inner), nil
		case []byte:
			return inner, nil
		default:
			out, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
			}
			return out, nil
		}

	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrDecoding, enc)
	}
}
