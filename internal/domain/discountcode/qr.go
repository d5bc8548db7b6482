package discountcode

import (
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

var ErrQRSignatureMismatch = errors.New("qr payload signature mismatch")

const (
	qrVersion  = "1"
	qrMACBytes = 10
)

var macEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// CodeRef is what the validator extracts from scanned or typed input. ID is
// only known when the input was a signed QR envelope.
type CodeRef struct {
	Manual ManualCode
	ID     *uuid.UUID
}

// QRCodec builds and parses QR payloads of the form
// <PREFIX>1.<MANUAL>.<CODE ID>.<MAC>, where MAC is a truncated keyed BLAKE2b
// over the first three segments.
type QRCodec struct {
	key    []byte
	format Format
}

func NewQRCodec(signingKey string, format Format) *QRCodec {
	key := []byte(signingKey)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	return &QRCodec{key: key, format: format}
}

func (q *QRCodec) tag() string {
	return q.format.Prefix + qrVersion
}

func (q *QRCodec) Encode(code *DiscountCode) string {
	body := q.tag() + "." + code.ManualCode().String() + "." + code.ID().String()
	return body + "." + q.mac(body)
}

// Decode accepts either a signed envelope or a bare manual code in any of the
// forms Format.Normalize understands.
func (q *QRCodec) Decode(raw string) (CodeRef, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Split(trimmed, ".")
	if len(parts) == 4 && strings.EqualFold(parts[0], q.tag()) {
		return q.decodeEnvelope(parts)
	}

	manual, err := q.format.Normalize(trimmed)
	if err != nil {
		return CodeRef{}, err
	}
	return CodeRef{Manual: manual}, nil
}

func (q *QRCodec) decodeEnvelope(parts []string) (CodeRef, error) {
	manual, err := q.format.Normalize(parts[1])
	if err != nil {
		return CodeRef{}, err
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return CodeRef{}, ErrMalformedCode
	}

	body := q.tag() + "." + manual.String() + "." + id.String()
	want := q.mac(body)
	if subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToUpper(parts[3]))) != 1 {
		return CodeRef{}, ErrQRSignatureMismatch
	}
	return CodeRef{Manual: manual, ID: &id}, nil
}

func (q *QRCodec) mac(body string) string {
	h, err := blake2b.New256(q.key)
	if err != nil {
		// key length is bounded in NewQRCodec
		panic(err)
	}
	_, _ = h.Write([]byte(body))
	return macEncoding.EncodeToString(h.Sum(nil)[:qrMACBytes])
}
