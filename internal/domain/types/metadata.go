package types

// Encoding names the transport encoding a sign-data payload arrives in.
type Encoding string

const (
	// EncodingNone passes the payload through untouched.
	EncodingNone Encoding = "none"
	// EncodingBase64 expects standard base64 text.
	EncodingBase64 Encoding = "base64"
	// EncodingMsgpack expects a single msgpack value.
	EncodingMsgpack Encoding = "msgpack"
)

// SignMetadata describes how a sign-data payload is decoded and validated.
// Schema is a JSON-Schema document handed to the schema validator; a nil
// schema accepts any decoded payload.
type SignMetadata struct {
	Encoding Encoding
	Schema   []byte
}
