package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	MessageRoleUser  = "user"
	MessageRoleModel = "model"
)

// Message is one turn of a conversation. Immutable once created.
type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"` // data URI
	Timestamp int64  `json:"timestamp"`       // unix millis
}

// ImageAttachment is a decoded inline image for the generation request.
// Only the current turn may carry one; history turns are text only.
type ImageAttachment struct {
	Data     []byte
	MimeType string
}

// DataURI renders the attachment in the form the transcript stores.
func (a ImageAttachment) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MimeType, base64.StdEncoding.EncodeToString(a.Data))
}

// ParseDataURI decodes a data:<mime>;base64,<payload> string.
func ParseDataURI(uri string) (*ImageAttachment, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	mime, encoded := strings.CutSuffix(meta, ";base64")
	if !encoded {
		return nil, errors.New("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding data URI payload: %w", err)
	}
	return &ImageAttachment{Data: data, MimeType: mime}, nil
}
