// Package codec provides ready-made cursor codecs for common cursor types.
//
// A codec converts between a typed, ordered cursor value and the opaque
// string token exposed in pagination arguments and edges. Tokens are the
// base64 form of "cursor:<kind>:<payload>", so a token encoded for one
// cursor type is rejected when decoded as another.
//
// Example usage:
//
//	c := codec.Int64()
//	token := c.Encode(42)        // opaque base64 token
//	id, err := c.Decode(token)   // 42, nil
//
// Decoding is strict: any token that was not produced by the matching
// Encode fails with an error rather than falling back to a default, which
// the resolver surfaces as an InvalidCursorError.
package codec

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/google/uuid"

	"github.com/nrfta/go-relay"
)

const tokenPrefix = "cursor"

// encodeToken wraps a typed payload into an opaque base64 token.
func encodeToken(kind, payload string) string {
	data := tokenPrefix + ":" + kind + ":" + payload
	return base64.URLEncoding.EncodeToString([]byte(data))
}

// decodeToken unwraps a token and verifies it carries the expected kind.
// The payload may itself contain ':' (e.g. timestamps), so only the first
// two separators are structural.
func decodeToken(kind, token string) (string, error) {
	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", errors.Wrap(err, "not base64")
	}

	parts := strings.SplitN(string(decoded), ":", 3)
	if len(parts) != 3 || parts[0] != tokenPrefix {
		return "", errors.New("malformed cursor token")
	}
	if parts[1] != kind {
		return "", errors.Errorf("expected %s cursor, got %s", kind, parts[1])
	}

	return parts[2], nil
}

type intCodec struct{}

// Int returns a codec for int cursors.
func Int() relay.Codec[int] {
	return intCodec{}
}

func (intCodec) Encode(cursor int) string {
	return encodeToken("int", strconv.Itoa(cursor))
}

func (intCodec) Decode(token string) (int, error) {
	payload, err := decodeToken("int", token)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(payload)
	if err != nil {
		return 0, errors.Wrap(err, "not an integer")
	}
	return value, nil
}

type int64Codec struct{}

// Int64 returns a codec for int64 cursors, the natural fit for BIGSERIAL
// primary keys.
func Int64() relay.Codec[int64] {
	return int64Codec{}
}

func (int64Codec) Encode(cursor int64) string {
	return encodeToken("int64", strconv.FormatInt(cursor, 10))
}

func (int64Codec) Decode(token string) (int64, error) {
	payload, err := decodeToken("int64", token)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "not an integer")
	}
	return value, nil
}

type stringCodec struct{}

// String returns a codec for string cursors, ordered lexicographically.
func String() relay.Codec[string] {
	return stringCodec{}
}

func (stringCodec) Encode(cursor string) string {
	return encodeToken("string", cursor)
}

func (stringCodec) Decode(token string) (string, error) {
	return decodeToken("string", token)
}

type timeCodec struct{}

// Time returns a codec for time.Time cursors. Payloads use RFC3339 with
// nanoseconds in UTC, so the round trip preserves the instant and its
// ordering even when the original value carried a different location.
func Time() relay.Codec[time.Time] {
	return timeCodec{}
}

func (timeCodec) Encode(cursor time.Time) string {
	return encodeToken("time", cursor.UTC().Format(time.RFC3339Nano))
}

func (timeCodec) Decode(token string) (time.Time, error) {
	payload, err := decodeToken("time", token)
	if err != nil {
		return time.Time{}, err
	}

	value, err := time.Parse(time.RFC3339Nano, payload)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "not a timestamp")
	}
	return value, nil
}

type uuidCodec struct{}

// UUID returns a codec for uuid.UUID cursors, ordered by their canonical
// string form.
func UUID() relay.Codec[uuid.UUID] {
	return uuidCodec{}
}

func (uuidCodec) Encode(cursor uuid.UUID) string {
	return encodeToken("uuid", cursor.String())
}

func (uuidCodec) Decode(token string) (uuid.UUID, error) {
	payload, err := decodeToken("uuid", token)
	if err != nil {
		return uuid.Nil, err
	}

	value, err := uuid.Parse(payload)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "not a uuid")
	}
	return value, nil
}
